package widget

// EventCode identifies an interaction delivered to an object.
type EventCode int

const (
	EventAll EventCode = iota // Matches every code when used in AddEventCallback
	EventPressed
	EventReleased
	EventClicked
	EventValueChanged
	EventScreenLoaded
	EventScreenUnloaded
)

func (c EventCode) String() string {
	switch c {
	case EventAll:
		return "all"
	case EventPressed:
		return "pressed"
	case EventReleased:
		return "released"
	case EventClicked:
		return "clicked"
	case EventValueChanged:
		return "value_changed"
	case EventScreenLoaded:
		return "screen_loaded"
	case EventScreenUnloaded:
		return "screen_unloaded"
	default:
		return "unknown"
	}
}

// Event is passed to callbacks. UserData is the value given when the callback
// was bound, so one callback can serve several objects.
type Event struct {
	Code     EventCode
	Target   *Object
	UserData any
}

// Callback handles an event on an object.
type Callback func(e *Event)

type binding struct {
	code     EventCode
	cb       Callback
	userData any
}

// AddEventCallback binds cb to code on the object. Bindings cannot be removed.
func (o *Object) AddEventCallback(cb Callback, code EventCode, userData any) *Object {
	o.callbacks = append(o.callbacks, binding{code: code, cb: cb, userData: userData})
	return o
}

// Send delivers code to every callback bound on the object, in binding order.
// It returns the number of callbacks invoked.
func (o *Object) Send(code EventCode) int {
	n := 0
	for _, b := range o.callbacks {
		if b.code != code && b.code != EventAll {
			continue
		}
		b.cb(&Event{Code: code, Target: o, UserData: b.userData})
		n++
	}
	return n
}
