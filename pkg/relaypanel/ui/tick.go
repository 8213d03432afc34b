package ui

import "fmt"

// TickFunc refreshes a built screen from application state. It must only
// update existing objects, never create new ones.
type TickFunc func(c *Context)

func noTick(*Context) {}

// OnTick replaces the tick routine of a screen. A nil fn restores the
// default, which does nothing.
func (c *Context) OnTick(id ScreenID, fn TickFunc) error {
	if _, ok := c.ticks[id]; !ok {
		return fmt.Errorf("on tick: %w: %d", ErrInvalidScreen, int(id))
	}
	if fn == nil {
		fn = noTick
	}
	c.ticks[id] = fn
	return nil
}

// TickScreenByID runs the tick routine registered for id.
func (c *Context) TickScreenByID(id ScreenID) error {
	fn, ok := c.ticks[id]
	if !ok {
		return fmt.Errorf("tick: %w: %d", ErrInvalidScreen, int(id))
	}
	if !c.built[id] {
		return fmt.Errorf("tick %s: %w", id, ErrScreenNotBuilt)
	}
	fn(c)
	return nil
}

// TickScreen runs the tick routine at a 0-based screen index; index i is
// screen id i+1.
func (c *Context) TickScreen(index int) error {
	if index < 0 || index >= ScreenCount {
		return fmt.Errorf("tick: %w: index %d", ErrInvalidScreen, index)
	}
	return c.TickScreenByID(ScreenID(index + 1))
}

// TickActive ticks the screen currently shown. It does nothing before the
// first Load.
func (c *Context) TickActive() error {
	id, ok := c.ActiveScreen()
	if !ok {
		return nil
	}
	return c.TickScreenByID(id)
}
