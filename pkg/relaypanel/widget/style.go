package widget

type styleProp uint8

const (
	propBgColor styleProp = 1 << iota
	propBgOpa
	propTextColor
	propBorderColor
	propBorderWidth
	propAlign
)

// Style holds per-object visual overrides. Colours are 0xRRGGBB.
// Properties that were never set fall back to the display theme.
type Style struct {
	BgColor     uint32
	BgOpa       uint8
	TextColor   uint32
	BorderColor uint32
	BorderWidth int32
	Align       Align

	set styleProp
}

func (s Style) HasBgColor() bool     { return s.set&propBgColor != 0 }
func (s Style) HasBgOpa() bool       { return s.set&propBgOpa != 0 }
func (s Style) HasTextColor() bool   { return s.set&propTextColor != 0 }
func (s Style) HasBorderColor() bool { return s.set&propBorderColor != 0 }
func (s Style) HasBorderWidth() bool { return s.set&propBorderWidth != 0 }

// Theme supplies the colours used for any style property an object leaves unset.
type Theme struct {
	Primary    uint32 // Buttons, checked switches
	Secondary  uint32 // Accents
	Background uint32 // Screen background
	Surface    uint32 // Unchecked switch track
	Text       uint32 // Label text
	OnPrimary  uint32 // Text on primary-coloured objects
	Dark       bool
	FontPath   string
	FontSize   int
}

// Resolved is a fully populated style ready for drawing.
type Resolved struct {
	BgColor     uint32
	BgOpa       uint8
	TextColor   uint32
	BorderColor uint32
	BorderWidth int32
}

// Resolve merges the object's own style with the display theme.
func (d *Display) Resolve(o *Object) Resolved {
	t := d.theme
	r := Resolved{TextColor: t.Text, BorderColor: t.Secondary}

	switch o.kind {
	case KindScreen:
		r.BgColor, r.BgOpa = t.Background, 255
	case KindButton:
		r.BgColor, r.BgOpa = t.Primary, 255
	case KindSwitch:
		r.BgColor, r.BgOpa = t.Surface, 255
		if o.checked {
			r.BgColor = t.Primary
		}
	case KindLabel, KindLED:
		r.BgOpa = 0
	}

	if inButton(o) {
		r.TextColor = t.OnPrimary
	}

	s := o.style
	if s.HasBgColor() {
		r.BgColor = s.BgColor
	}
	if s.HasBgOpa() {
		r.BgOpa = s.BgOpa
	}
	if s.HasTextColor() {
		r.TextColor = s.TextColor
	}
	if s.HasBorderColor() {
		r.BorderColor = s.BorderColor
	}
	if s.HasBorderWidth() {
		r.BorderWidth = s.BorderWidth
	}
	return r
}

func inButton(o *Object) bool {
	return o.parent != nil && o.parent.kind == KindButton
}
