package ui

import "github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"

func buildSettings(c *Context) {
	obj := c.root(ScreenSettings)
	o := &c.objects

	back := navButton(obj, 10, 180, c.T(MsgMain))
	c.bind(back, widget.EventReleased, c.actions.LoadMain, nil)

	o.set(ObjSwRelay1, relaySwitch(c, obj, 149, 81, Relay1))
	o.set(ObjSwRelay2, relaySwitch(c, obj, 149, 135, Relay2))

	o.set(ObjLblRelay1Settings, statusLabel(obj, 10, 87, widget.SizeContent, widget.SizeContent, c.T(MsgRelay1)))
	o.set(ObjLblRelay2Settings, statusLabel(obj, 11, 141, widget.SizeContent, widget.SizeContent, c.T(MsgRelay2)))
	o.set(ObjLblNodeSettings, statusLabel(obj, 10, 28, 39, 16, c.T(MsgNode)))
	o.set(ObjLblNodeIDSettings, statusLabel(obj, 149, 28, 87, 16, c.T(MsgNode)))

	send := navButton(obj, 212, 181, c.T(MsgSend))
	c.bind(send, widget.EventReleased, c.actions.SendStates, nil)
}

// relaySwitch creates a switch whose value changes reach SwitchStateChanged
// tagged with relay.
func relaySwitch(c *Context, parent *widget.Object, x, y int32, relay Relay) *widget.Object {
	sw := widget.NewSwitch(parent).
		SetPos(x, y).
		SetSize(50, 25).
		SetBgColor(0xff02effa).
		SetBorderColor(0xffffffff).
		SetBorderWidth(2)
	c.bind(sw, widget.EventValueChanged, c.actions.SwitchStateChanged, RelayPayload{Relay: relay})
	return sw
}
