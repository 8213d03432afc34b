package widget

import (
	"errors"
	"unicode/utf8"
)

// ErrNotScreen is returned when Load is given an object that is not a screen
// of this display.
var ErrNotScreen = errors.New("widget: object is not a screen of this display")

// TextMeasurer returns the pixel size of a rendered line of text.
type TextMeasurer func(text string) (w, h int32)

// Rect is an absolute rectangle on the canvas.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Display owns the screens of one fixed-size canvas and tracks which one is shown.
type Display struct {
	width, height int32
	theme         Theme
	screens       []*Object
	active        *Object
	pressed       *Object
	measure       TextMeasurer
}

// NewDisplay creates a display with a logical canvas of w by h pixels.
// Text is measured with a fixed 8x16 cell until SetTextMeasurer is called.
func NewDisplay(w, h int32) *Display {
	return &Display{
		width:   w,
		height:  h,
		measure: fixedCellMeasurer,
	}
}

func fixedCellMeasurer(text string) (int32, int32) {
	return int32(utf8.RuneCountInString(text)) * 8, 16
}

func (d *Display) Width() int32  { return d.width }
func (d *Display) Height() int32 { return d.height }
func (d *Display) Theme() Theme  { return d.theme }

// SetTheme replaces the display theme. Objects pick it up on the next draw.
func (d *Display) SetTheme(t Theme) {
	d.theme = t
}

// SetTextMeasurer installs the function used for SizeContent labels.
func (d *Display) SetTextMeasurer(m TextMeasurer) {
	if m == nil {
		m = fixedCellMeasurer
	}
	d.measure = m
}

// Screens returns every screen created on the display, in creation order.
func (d *Display) Screens() []*Object {
	out := make([]*Object, len(d.screens))
	copy(out, d.screens)
	return out
}

// Active returns the screen currently shown, or nil before the first Load.
func (d *Display) Active() *Object {
	return d.active
}

// NewScreen creates a root object sized to the display canvas.
func NewScreen(d *Display) *Object {
	o := newObject(d, KindScreen, nil)
	o.w, o.h = d.width, d.height
	d.screens = append(d.screens, o)
	return o
}

// Load makes screen the active screen. The previous screen receives
// EventScreenUnloaded and the new one EventScreenLoaded. Any press in
// progress is dropped.
func (d *Display) Load(screen *Object) error {
	if screen == nil || !screen.IsScreen() || screen.display != d {
		return ErrNotScreen
	}
	prev := d.active
	if prev == screen {
		return nil
	}
	d.active = screen
	d.pressed = nil
	if prev != nil {
		prev.Send(EventScreenUnloaded)
	}
	screen.Send(EventScreenLoaded)
	return nil
}

// ObjectSize resolves SizeContent for the object.
func (d *Display) ObjectSize(o *Object) (w, h int32) {
	w, h = o.w, o.h
	if w != SizeContent && h != SizeContent {
		return w, h
	}

	var cw, ch int32
	switch o.kind {
	case KindLabel:
		cw, ch = d.measure(o.text)
	default:
		for _, c := range o.children {
			x, y := c.x, c.y
			if c.style.Align == AlignCenter {
				x, y = 0, 0
			}
			sw, sh := d.ObjectSize(c)
			cw = max(cw, x+sw)
			ch = max(ch, y+sh)
		}
	}

	if w == SizeContent {
		w = cw
	}
	if h == SizeContent {
		h = ch
	}
	return w, h
}

// Bounds returns the object's absolute rectangle on the canvas.
func (d *Display) Bounds(o *Object) Rect {
	w, h := d.ObjectSize(o)
	if o.parent == nil {
		return Rect{X: o.x, Y: o.y, W: w, H: h}
	}

	p := d.Bounds(o.parent)
	x, y := p.X+o.x, p.Y+o.y
	if o.style.Align == AlignCenter {
		x = p.X + (p.W-w)/2 + o.x
		y = p.Y + (p.H-h)/2 + o.y
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// HitTest returns the topmost clickable object on the active screen at the
// point, or nil. Later siblings are above earlier ones.
func (d *Display) HitTest(x, y int32) *Object {
	if d.active == nil {
		return nil
	}
	return d.hit(d.active, x, y)
}

func (d *Display) hit(o *Object, x, y int32) *Object {
	for i := len(o.children) - 1; i >= 0; i-- {
		if t := d.hit(o.children[i], x, y); t != nil {
			return t
		}
	}
	if o.Clickable() && d.Bounds(o).Contains(x, y) {
		return o
	}
	return nil
}

// PointerDown starts a press at the point and returns the pressed object.
func (d *Display) PointerDown(x, y int32) *Object {
	t := d.HitTest(x, y)
	d.pressed = t
	if t != nil {
		t.Send(EventPressed)
	}
	return t
}

// PointerUp ends the press in progress. The pressed object always receives
// EventReleased. If the pointer is still over it, a switch toggles and
// receives EventValueChanged, then every object receives EventClicked.
func (d *Display) PointerUp(x, y int32) *Object {
	t := d.pressed
	d.pressed = nil
	if t == nil {
		return nil
	}

	t.Send(EventReleased)
	if !d.Bounds(t).Contains(x, y) {
		return t
	}
	if t.kind == KindSwitch {
		t.checked = !t.checked
		t.Send(EventValueChanged)
	}
	t.Send(EventClicked)
	return t
}

// Pressed returns the object under an active press, or nil.
func (d *Display) Pressed() *Object {
	return d.pressed
}
