package ui

import "strconv"

// ScreenID addresses a screen. Ids are dense and start at 1; 0 is never valid.
type ScreenID int

const (
	ScreenMain ScreenID = iota + 1
	ScreenSettings
	ScreenStats
)

// ScreenCount is the number of screens the panel builds.
const ScreenCount = int(ScreenStats)

// Screens returns every screen id in build order.
func Screens() []ScreenID {
	return []ScreenID{ScreenMain, ScreenSettings, ScreenStats}
}

// Valid reports whether the id names a declared screen.
func (id ScreenID) Valid() bool {
	return id >= ScreenMain && id <= ScreenStats
}

func (id ScreenID) String() string {
	switch id {
	case ScreenMain:
		return "main"
	case ScreenSettings:
		return "settings"
	case ScreenStats:
		return "stats"
	default:
		return "screen(" + strconv.Itoa(int(id)) + ")"
	}
}

// ObjectName is the stable symbolic name of a registered widget.
type ObjectName int

const (
	ObjMain ObjectName = iota
	ObjLblAlarmState
	ObjLEDState
	ObjLblRelay1
	ObjLblRelay2
	ObjLblNode
	ObjLblNodeID
	ObjRelay1State
	ObjRelay2State
	ObjRelay1StateLED
	ObjRelay2StateLED
	ObjLEDWatchdog

	ObjSettings
	ObjSwRelay1
	ObjSwRelay2
	ObjLblRelay1Settings
	ObjLblRelay2Settings
	ObjLblNodeSettings
	ObjLblNodeIDSettings

	ObjStats
	ObjLblRetries
	ObjLblRetryCount

	objectCount
)

var objectInfo = [objectCount]struct {
	name   string
	screen ScreenID
}{
	ObjMain:           {"main", ScreenMain},
	ObjLblAlarmState:  {"lbl_alarm_state", ScreenMain},
	ObjLEDState:       {"led_state", ScreenMain},
	ObjLblRelay1:      {"lbl_relay1", ScreenMain},
	ObjLblRelay2:      {"lbl_relay2", ScreenMain},
	ObjLblNode:        {"lbl_node", ScreenMain},
	ObjLblNodeID:      {"lbl_node_id", ScreenMain},
	ObjRelay1State:    {"relay1_state", ScreenMain},
	ObjRelay2State:    {"relay2_state", ScreenMain},
	ObjRelay1StateLED: {"relay1_state_led", ScreenMain},
	ObjRelay2StateLED: {"relay2_state_led", ScreenMain},
	ObjLEDWatchdog:    {"led_watchdog", ScreenMain},

	ObjSettings:          {"settings", ScreenSettings},
	ObjSwRelay1:          {"sw_relay1", ScreenSettings},
	ObjSwRelay2:          {"sw_relay2", ScreenSettings},
	ObjLblRelay1Settings: {"lbl_relay1_1", ScreenSettings},
	ObjLblRelay2Settings: {"lbl_relay1_2", ScreenSettings},
	ObjLblNodeSettings:   {"lbl_node_1", ScreenSettings},
	ObjLblNodeIDSettings: {"lbl_node_id_1", ScreenSettings},

	ObjStats:         {"stats", ScreenStats},
	ObjLblRetries:    {"lbl_retries", ScreenStats},
	ObjLblRetryCount: {"lbl_retry_count", ScreenStats},
}

var screenRoots = map[ScreenID]ObjectName{
	ScreenMain:     ObjMain,
	ScreenSettings: ObjSettings,
	ScreenStats:    ObjStats,
}

// Valid reports whether the name is declared.
func (n ObjectName) Valid() bool {
	return n >= 0 && n < objectCount
}

func (n ObjectName) String() string {
	if !n.Valid() {
		return "object(" + strconv.Itoa(int(n)) + ")"
	}
	return objectInfo[n].name
}

// Screen returns the screen that creates the object.
func (n ObjectName) Screen() ScreenID {
	if !n.Valid() {
		return 0
	}
	return objectInfo[n].screen
}

// ObjectNames returns every declared name, grouped by screen.
func ObjectNames() []ObjectName {
	out := make([]ObjectName, 0, objectCount)
	for n := ObjectName(0); n < objectCount; n++ {
		out = append(out, n)
	}
	return out
}

// ScreenObjects returns the names a screen registers, root first.
func ScreenObjects(id ScreenID) []ObjectName {
	var out []ObjectName
	for n := ObjectName(0); n < objectCount; n++ {
		if objectInfo[n].screen == id {
			out = append(out, n)
		}
	}
	return out
}

// ParseObjectName resolves a symbolic name such as "lbl_alarm_state".
func ParseObjectName(s string) (ObjectName, bool) {
	for n := ObjectName(0); n < objectCount; n++ {
		if objectInfo[n].name == s {
			return n, true
		}
	}
	return 0, false
}
