// Package widget is a small retained-mode widget tree for fixed-canvas panels.
//
// Objects are created under a parent and never re-parented. A Display owns every
// screen created on it and everything below those screens; callers keep plain
// pointers for later lookup but never free anything themselves.
//
// The package has no rendering or input code of its own. A host walks the active
// screen to draw it and feeds pointer state back through Display.PointerDown and
// Display.PointerUp, which is where interaction events originate.
package widget

// Kind identifies what an object is, which drives rendering and input handling.
type Kind int

const (
	KindScreen Kind = iota // Root of a widget tree, sized to the canvas
	KindButton             // Clickable container, usually wrapping a label
	KindLabel              // Single line of text
	KindLED                // Round indicator with a colour and brightness
	KindSwitch             // Two-state toggle
)

func (k Kind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindButton:
		return "button"
	case KindLabel:
		return "label"
	case KindLED:
		return "led"
	case KindSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// SizeContent as a width or height sizes the object to its content.
const SizeContent int32 = -1

// Align positions an object inside its parent. AlignDefault uses the object's
// own x/y relative to the parent's top-left corner.
type Align int

const (
	AlignDefault Align = iota
	AlignCenter
)

// Object is a single node in a widget tree.
type Object struct {
	display  *Display
	kind     Kind
	parent   *Object
	children []*Object

	x, y int32
	w, h int32

	style Style
	text  string

	ledColor   uint32
	brightness uint8
	checked    bool

	callbacks []binding
}

func newObject(d *Display, kind Kind, parent *Object) *Object {
	o := &Object{
		display:    d,
		kind:       kind,
		parent:     parent,
		w:          SizeContent,
		h:          SizeContent,
		brightness: 255,
	}
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	return o
}

// NewButton creates a button under parent.
func NewButton(parent *Object) *Object {
	return newObject(parent.display, KindButton, parent)
}

// NewLabel creates a label under parent.
func NewLabel(parent *Object) *Object {
	return newObject(parent.display, KindLabel, parent)
}

// NewLED creates an LED under parent. LEDs start red at full brightness.
func NewLED(parent *Object) *Object {
	o := newObject(parent.display, KindLED, parent)
	o.ledColor = 0xFF0000
	return o
}

// NewSwitch creates an unchecked switch under parent.
func NewSwitch(parent *Object) *Object {
	return newObject(parent.display, KindSwitch, parent)
}

func (o *Object) Kind() Kind          { return o.kind }
func (o *Object) Parent() *Object     { return o.parent }
func (o *Object) Display() *Display   { return o.display }
func (o *Object) Style() Style        { return o.style }
func (o *Object) Text() string        { return o.text }
func (o *Object) Checked() bool       { return o.checked }
func (o *Object) LEDColor() uint32    { return o.ledColor }
func (o *Object) Brightness() uint8   { return o.brightness }
func (o *Object) Pos() (x, y int32)   { return o.x, o.y }
func (o *Object) Size() (w, h int32)  { return o.w, o.h }
func (o *Object) IsScreen() bool      { return o.kind == KindScreen }
func (o *Object) ChildCount() int     { return len(o.children) }
func (o *Object) Child(i int) *Object { return o.children[i] }

// Children returns the object's children in creation order.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// Screen returns the root of the tree this object belongs to.
func (o *Object) Screen() *Object {
	s := o
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Clickable reports whether the object receives pointer events directly.
func (o *Object) Clickable() bool {
	return o.kind == KindButton || o.kind == KindSwitch
}

func (o *Object) SetPos(x, y int32) *Object {
	o.x, o.y = x, y
	return o
}

func (o *Object) SetSize(w, h int32) *Object {
	o.w, o.h = w, h
	return o
}

func (o *Object) SetText(text string) *Object {
	o.text = text
	return o
}

// SetLEDColor sets an LED's colour as 0xRRGGBB. The alpha byte, if any, is ignored.
func (o *Object) SetLEDColor(rgb uint32) *Object {
	o.ledColor = rgb & 0xFFFFFF
	return o
}

func (o *Object) SetBrightness(b uint8) *Object {
	o.brightness = b
	return o
}

// SetChecked changes a switch's state without sending EventValueChanged.
func (o *Object) SetChecked(checked bool) *Object {
	o.checked = checked
	return o
}

func (o *Object) SetAlign(a Align) *Object {
	o.style.Align = a
	o.style.set |= propAlign
	return o
}

func (o *Object) SetBgColor(argb uint32) *Object {
	o.style.BgColor = argb & 0xFFFFFF
	o.style.set |= propBgColor
	return o
}

func (o *Object) SetBgOpa(opa uint8) *Object {
	o.style.BgOpa = opa
	o.style.set |= propBgOpa
	return o
}

func (o *Object) SetTextColor(argb uint32) *Object {
	o.style.TextColor = argb & 0xFFFFFF
	o.style.set |= propTextColor
	return o
}

func (o *Object) SetBorderColor(argb uint32) *Object {
	o.style.BorderColor = argb & 0xFFFFFF
	o.style.set |= propBorderColor
	return o
}

func (o *Object) SetBorderWidth(w int32) *Object {
	o.style.BorderWidth = w
	o.style.set |= propBorderWidth
	return o
}
