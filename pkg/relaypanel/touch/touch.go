// Package touch reads a resistive or capacitive touch controller through evdev
// and turns its raw reports into press and release points on the canvas.
//
// The reader runs on its own goroutine. Points are handed to the UI loop over
// a buffered channel, and the UI loop is the only place they are applied to
// the widget display.
package touch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"
)

// Calibration maps raw controller coordinates onto a canvas of Width by
// Height. The ranges are in panel orientation, i.e. after SwapXY is applied.
type Calibration struct {
	MinX, MaxX int32
	MinY, MaxY int32
	SwapXY     bool
	InvertX    bool
	InvertY    bool
	Width      int32
	Height     int32
}

// Map converts a raw reading to canvas coordinates, clamped to the canvas.
func (c Calibration) Map(rawX, rawY int32) (x, y int32) {
	if c.SwapXY {
		rawX, rawY = rawY, rawX
	}
	x = scale(rawX, c.MinX, c.MaxX, c.Width)
	y = scale(rawY, c.MinY, c.MaxY, c.Height)
	if c.InvertX {
		x = c.Width - 1 - x
	}
	if c.InvertY {
		y = c.Height - 1 - y
	}
	return x, y
}

func scale(v, lo, hi, size int32) int32 {
	if hi <= lo || size <= 0 {
		return 0
	}
	out := int64(v-lo) * int64(size-1) / int64(hi-lo)
	return int32(min(max(out, 0), int64(size-1)))
}

// Point is a press or release on the canvas.
type Point struct {
	X, Y int32
	Down bool
}

// Decoder folds evdev reports into Points. It emits one Point per SYN_REPORT
// in which the touch state changed.
type Decoder struct {
	Calibration Calibration

	rawX, rawY int32
	down       bool
	changed    bool
}

// Feed consumes one event and returns a Point when a report completes a
// press or a release.
func (d *Decoder) Feed(ev evdev.InputEvent) (Point, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X:
			d.rawX = ev.Value
		case evdev.ABS_Y:
			d.rawY = ev.Value
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			down := ev.Value != 0
			if down != d.down {
				d.down = down
				d.changed = true
			}
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT && d.changed {
			d.changed = false
			x, y := d.Calibration.Map(d.rawX, d.rawY)
			return Point{X: x, Y: y, Down: d.down}, true
		}
	}
	return Point{}, false
}

// device is the part of *evdev.InputDevice the reader uses.
type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader delivers Points from one input device.
type Reader struct {
	dev    device
	dec    Decoder
	events chan Point
	log    *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// Open opens the device at path. queue sets the channel buffer size.
func Open(path string, cal Calibration, queue int, log *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", path, err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	name, _ := dev.Name()

	// Close only interrupts a pending ReadOne on a non-blocking descriptor.
	// Nothing may call Fd after this.
	if err := dev.NonBlock(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("touch: set non-blocking %s: %w", path, err)
	}
	log.Debug("Touch device opened", "path", path, "name", name)

	return &Reader{
		dev:    dev,
		dec:    Decoder{Calibration: cal},
		events: make(chan Point, queue),
		log:    log,
	}, nil
}

// Events returns the channel Points are delivered on. It is closed when Run returns.
func (r *Reader) Events() <-chan Point {
	return r.events
}

// Run reads the device until ctx is cancelled or the device fails.
func (r *Reader) Run(ctx context.Context) error {
	defer close(r.events)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			r.Close()
		case <-stop:
		}
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("touch: read: %w", err)
		}

		p, ok := r.dec.Feed(*ev)
		if !ok {
			continue
		}
		if !r.deliver(ctx, p) {
			return nil
		}
	}
}

// deliver queues p for the UI loop. Presses are dropped, with a warning, if
// the UI loop falls behind; releases wait for room so the display is never
// left pressed. It reports false when ctx ended while waiting.
func (r *Reader) deliver(ctx context.Context, p Point) bool {
	if p.Down {
		select {
		case r.events <- p:
		default:
			r.log.Warn("Touch queue full, dropping press", "x", p.X, "y", p.Y)
		}
		return true
	}

	select {
	case r.events <- p:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close releases the device. It is safe to call more than once and from
// another goroutine than Run.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.dev.Close()
	})
	return r.closeErr
}
