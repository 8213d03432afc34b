package internal

import (
	"fmt"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer that present a panel canvas.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	CanvasWidth     int32
	CanvasHeight    int32
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, canvasW, canvasH int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	width, height := canvasW, canvasH

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
		width, height = canvasW*constants.DevWindowScale, canvasH*constants.DevWindowScale
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height,
		"canvas_width", canvasW, "canvas_height", canvasH)

	win, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	// Widgets are laid out on the logical canvas; SDL scales to the window
	// and maps mouse coordinates back.
	if err := renderer.SetLogicalSize(canvasW, canvasH); err != nil {
		GetInternalLogger().Warn("Failed to set logical size", "error", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:       win,
		Renderer:     renderer,
		Title:        title,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
		hasVSync:     vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// GetWindow returns the window created by Init, or nil.
func GetWindow() *Window {
	return window
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
