package ui

import "github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"

func buildStats(c *Context) {
	obj := c.root(ScreenStats)
	o := &c.objects

	back := navButton(obj, 10, 180, c.T(MsgMain))
	c.bind(back, widget.EventReleased, c.actions.LoadMain, nil)

	o.set(ObjLblRetries, statusLabel(obj, 10, 28, widget.SizeContent, widget.SizeContent, c.T(MsgRetries)))
	o.set(ObjLblRetryCount, statusLabel(obj, 169, 28, 87, 16, "0"))
}
