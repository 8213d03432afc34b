package ui

import (
	"strconv"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

// Relay identifies one of the node's relays.
type Relay int

const (
	Relay1 Relay = iota
	Relay2
)

func (r Relay) String() string {
	return "relay" + strconv.Itoa(int(r)+1)
}

// Payload tells a shared handler which control fired. Decode it with a type switch.
type Payload interface {
	payload()
}

// NoPayload is carried by bindings that need no disambiguation.
type NoPayload struct{}

// RelayPayload is carried by the relay switches.
type RelayPayload struct {
	Relay Relay
}

func (NoPayload) payload()    {}
func (RelayPayload) payload() {}

// Event is what an action handler receives.
type Event struct {
	Code    widget.EventCode
	Target  *widget.Object
	Payload Payload
	Context *Context
}

// Actions is implemented by the application and invoked from widget events.
type Actions interface {
	LoadSettings(e Event)
	LoadMain(e Event)
	LoadStats(e Event)
	SendStates(e Event)
	SwitchStateChanged(e Event)
}

// ActionFuncs adapts plain functions to Actions. Nil fields do nothing.
type ActionFuncs struct {
	OnLoadSettings       func(Event)
	OnLoadMain           func(Event)
	OnLoadStats          func(Event)
	OnSendStates         func(Event)
	OnSwitchStateChanged func(Event)
}

func (f ActionFuncs) LoadSettings(e Event)       { call(f.OnLoadSettings, e) }
func (f ActionFuncs) LoadMain(e Event)           { call(f.OnLoadMain, e) }
func (f ActionFuncs) LoadStats(e Event)          { call(f.OnLoadStats, e) }
func (f ActionFuncs) SendStates(e Event)         { call(f.OnSendStates, e) }
func (f ActionFuncs) SwitchStateChanged(e Event) { call(f.OnSwitchStateChanged, e) }

func call(fn func(Event), e Event) {
	if fn != nil {
		fn(e)
	}
}

// bind routes code on obj to action, tagging every delivery with p.
func (c *Context) bind(obj *widget.Object, code widget.EventCode, action func(Event), p Payload) {
	if p == nil {
		p = NoPayload{}
	}
	obj.AddEventCallback(func(e *widget.Event) {
		payload, ok := e.UserData.(Payload)
		if !ok {
			payload = NoPayload{}
		}
		action(Event{Code: e.Code, Target: e.Target, Payload: payload, Context: c})
	}, code, p)
}
