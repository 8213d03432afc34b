package internal

import (
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
	"github.com/veandco/go-sdl2/sdl"
)

// PollInput drains pending SDL events into the display's pointer.
// It reports whether a quit was requested.
func PollInput(d *widget.Display) (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.MouseButtonEvent:
			// Finger events arrive separately.
			if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				d.PointerDown(e.X, e.Y)
			} else {
				d.PointerUp(e.X, e.Y)
			}
		case *sdl.TouchFingerEvent:
			x := int32(e.X * float32(d.Width()))
			y := int32(e.Y * float32(d.Height()))
			switch e.Type {
			case sdl.FINGERDOWN:
				d.PointerDown(x, y)
			case sdl.FINGERUP:
				d.PointerUp(x, y)
			}
		}
	}
	return quit
}
