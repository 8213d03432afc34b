// Package relaypanel hosts a relay node's touch panel: it opens the SDL
// window, renders the widget screens built by package ui and feeds them
// pointer input from the mouse, SDL touch events or a raw evdev controller.
package relaypanel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/constants"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/internal"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/touch"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/ui"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

// WindowOptions are the SDL window flags used for the panel window.
type WindowOptions = internal.WindowOptions

// Options configures the panel host.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	CanvasWidth   int32         // Logical canvas width, 320 when zero
	CanvasHeight  int32         // Logical canvas height, 240 when zero
	WindowOptions WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	Theme         widget.Theme  // Applied to the display; also selects the font
	TouchDevice   string        // evdev touch controller; empty uses SDL input only
	Calibration   touch.Calibration
	LogPath       string // Full path for log file including filename (creates parent directories)
	LogLevel      string // Application log level ("debug", "info", "warn", "error")
}

// Panel is a running panel host.
type Panel struct {
	window  *internal.Window
	canvas  *internal.Canvas
	display *widget.Display
	touch   *touch.Reader
}

// Init starts SDL, opens the window and the theme font, and creates the
// display the screens are built on. Failures are *InfrastructureError
// wrapping ui.ErrUnavailable.
func Init(opts Options) (*Panel, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	internal.SetRawLogLevel(opts.LogLevel)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	if opts.CanvasWidth <= 0 {
		opts.CanvasWidth = constants.DefaultCanvasWidth
	}
	if opts.CanvasHeight <= 0 {
		opts.CanvasHeight = constants.DefaultCanvasHeight
	}

	win, err := internal.Init(opts.WindowTitle, opts.CanvasWidth, opts.CanvasHeight, opts.WindowOptions)
	if err != nil {
		return nil, NewInfrastructureError("sdl_init", fmt.Errorf("%w: %w", ui.ErrUnavailable, err))
	}

	canvas, err := internal.NewCanvas(win, opts.Theme.FontPath, opts.Theme.FontSize)
	if err != nil {
		internal.SDLCleanup()
		return nil, NewInfrastructureError("load_font", fmt.Errorf("%w: %w", ui.ErrUnavailable, err))
	}

	display := widget.NewDisplay(opts.CanvasWidth, opts.CanvasHeight)
	display.SetTheme(opts.Theme)
	display.SetTextMeasurer(canvas.Measure)

	p := &Panel{window: win, canvas: canvas, display: display}

	if opts.TouchDevice != "" {
		cal := opts.Calibration
		cal.Width, cal.Height = opts.CanvasWidth, opts.CanvasHeight
		r, err := touch.Open(opts.TouchDevice, cal, constants.TouchQueueSize, internal.GetInternalLogger())
		if err != nil {
			internal.GetLogger().Warn("Touch controller unavailable, using SDL input only",
				"device", opts.TouchDevice, "error", err)
		} else {
			p.touch = r
		}
	}

	return p, nil
}

// Display returns the display to build screens on.
func (p *Panel) Display() *widget.Display {
	return p.display
}

// Run shows the active screen until ctx is cancelled or the window is
// closed. frame is called once per frame after input is dispatched and
// before drawing; an error from it stops the loop and is returned.
func (p *Panel) Run(ctx context.Context, frame func() error) error {
	ctx, cancel := context.WithCancel(ctx)

	var points <-chan touch.Point
	readerDone := make(chan struct{})
	if p.touch != nil {
		points = p.touch.Events()
		go func() {
			defer close(readerDone)
			if err := p.touch.Run(ctx); err != nil {
				internal.GetLogger().Error("Touch reader stopped", "error", err)
			}
		}()
	} else {
		close(readerDone)
	}
	defer func() {
		cancel()
		<-readerDone
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if internal.PollInput(p.display) {
			internal.GetInternalLogger().Debug("Quit requested")
			return nil
		}
		points = p.drainTouch(points)

		if frame != nil {
			if err := frame(); err != nil {
				return err
			}
		}

		p.canvas.Draw(p.display)
		p.window.Present()
	}
}

func (p *Panel) drainTouch(points <-chan touch.Point) <-chan touch.Point {
	for {
		select {
		case pt, ok := <-points:
			if !ok {
				return nil
			}
			if pt.Down {
				p.display.PointerDown(pt.X, pt.Y)
			} else {
				p.display.PointerUp(pt.X, pt.Y)
			}
		default:
			return points
		}
	}
}

// Close releases the canvas, the window and SDL.
// Must be called before program exit to prevent resource leaks.
func (p *Panel) Close() {
	if p.touch != nil {
		p.touch.Close()
	}
	p.canvas.Destroy()
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
