package ui

import "github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"

func buildMain(c *Context) {
	obj := c.root(ScreenMain)
	o := &c.objects

	settings := navButton(obj, 10, 180, c.T(MsgSettings))
	c.bind(settings, widget.EventReleased, c.actions.LoadSettings, nil)

	o.set(ObjLblAlarmState, statusLabel(obj, 10, 62, widget.SizeContent, widget.SizeContent, c.T(MsgAlarmState)))
	o.set(ObjLEDState, indicatorLED(obj, 169, 54, 32, 32, 0xff0000))
	o.set(ObjLblRelay1, statusLabel(obj, 10, 109, widget.SizeContent, widget.SizeContent, c.T(MsgRelay1)))
	o.set(ObjLblRelay2, statusLabel(obj, 10, 154, widget.SizeContent, widget.SizeContent, c.T(MsgRelay2)))
	o.set(ObjLblNode, statusLabel(obj, 10, 20, 39, 16, c.T(MsgNode)))
	o.set(ObjLblNodeID, statusLabel(obj, 169, 20, 87, 16, c.T(MsgNode)))
	o.set(ObjRelay1State, statusLabel(obj, 213, 112, 87, 16, c.T(MsgEnabled)))
	o.set(ObjRelay2State, statusLabel(obj, 213, 154, 87, 16, c.T(MsgEnabled)))
	o.set(ObjRelay1StateLED, indicatorLED(obj, 169, 104, 32, 32, 0xff0000))
	o.set(ObjRelay2StateLED, indicatorLED(obj, 169, 146, 32, 32, 0xff0000))
	o.set(ObjLEDWatchdog, indicatorLED(obj, 282, 20, 18, 16, 0xfffc00))

	stats := navButton(obj, 212, 181, c.T(MsgStats))
	c.bind(stats, widget.EventReleased, c.actions.LoadStats, nil)
}
