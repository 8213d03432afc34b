package ui

// Translator supplies the text shown on widgets. Text returns fallback when
// it has no translation for id.
type Translator interface {
	Text(id, fallback string) string
}

type builtinText struct{}

func (builtinText) Text(_, fallback string) string { return fallback }

// Message ids for widget text.
const (
	MsgSettings   = "button.settings"
	MsgMain       = "button.main"
	MsgSend       = "button.send"
	MsgStats      = "button.stats"
	MsgAlarmState = "label.alarm_state"
	MsgRelay1     = "label.relay1_state"
	MsgRelay2     = "label.relay2_state"
	MsgNode       = "label.node"
	MsgEnabled    = "state.enabled"
	MsgDisabled   = "state.disabled"
	MsgRetries    = "label.retries"
)

// DefaultMessages is the English text for every message id.
var DefaultMessages = map[string]string{
	MsgSettings:   "Settings",
	MsgMain:       "Main",
	MsgSend:       "Send",
	MsgStats:      "Stats",
	MsgAlarmState: "Alarm State",
	MsgRelay1:     "Relay 1 State",
	MsgRelay2:     "Relay 2 State",
	MsgNode:       "Node",
	MsgEnabled:    "Enabled",
	MsgDisabled:   "Disabled",
	MsgRetries:    "Retries",
}

// T returns the display text for a message id.
func (c *Context) T(id string) string {
	return c.text.Text(id, DefaultMessages[id])
}
