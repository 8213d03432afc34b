// Package ui builds the relay node's screens on a widget display and drives them.
//
// A Context owns everything the screens share: the object registry, the panel
// variables, the tick hooks and the application's action handlers. Build the
// screen set once with CreateScreens, then call TickActive once per frame from
// the same goroutine that delivers input to the display.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/theme"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

// Context is the state of one panel's screen set.
type Context struct {
	display *widget.Display
	theme   widget.Theme
	actions Actions
	text    Translator
	log     *slog.Logger

	objects Objects
	vars    *Vars
	built   map[ScreenID]bool
	ticks   map[ScreenID]TickFunc
}

// Option configures a Context.
type Option func(*Context)

// WithTheme sets the theme applied by CreateScreens. The default is theme.Panel.
func WithTheme(t widget.Theme) Option {
	return func(c *Context) { c.theme = t }
}

// WithTranslator sets the source of widget text. The default is English.
func WithTranslator(t Translator) Option {
	return func(c *Context) {
		if t != nil {
			c.text = t
		}
	}
}

// WithLogger sets the logger for build, load and dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// WithVars shares an existing variable store instead of creating a new one.
func WithVars(v *Vars) Option {
	return func(c *Context) {
		if v != nil {
			c.vars = v
		}
	}
}

// New creates the context for display. A nil actions value binds every event
// to a no-op.
func New(display *widget.Display, actions Actions, opts ...Option) *Context {
	if actions == nil {
		actions = ActionFuncs{}
	}
	c := &Context{
		display: display,
		theme:   theme.Panel(""),
		actions: actions,
		text:    builtinText{},
		log:     slog.New(slog.DiscardHandler),
		vars:    NewVars(),
		built:   make(map[ScreenID]bool, ScreenCount),
		ticks:   make(map[ScreenID]TickFunc, ScreenCount),
	}
	for _, id := range Screens() {
		c.ticks[id] = noTick
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) Display() *widget.Display { return c.display }
func (c *Context) Objects() *Objects         { return &c.objects }
func (c *Context) Vars() *Vars               { return c.vars }
func (c *Context) Logger() *slog.Logger      { return c.log }

// Object returns the handle for name, or nil if its screen is not built.
// Tick hooks can use it freely for objects of the screen being ticked.
func (c *Context) Object(name ObjectName) *widget.Object {
	obj, _ := c.objects.Get(name)
	return obj
}

var builders = map[ScreenID]func(*Context){
	ScreenMain:     buildMain,
	ScreenSettings: buildSettings,
	ScreenStats:    buildStats,
}

// CreateScreens applies the theme and builds every screen in order.
// It must run once, before any tick or input is delivered.
func (c *Context) CreateScreens() error {
	if c.display == nil {
		return ErrUnavailable
	}
	c.display.SetTheme(c.theme)

	for _, id := range Screens() {
		if err := c.BuildScreen(id); err != nil {
			return err
		}
	}
	return nil
}

// BuildScreen builds one screen, registers its objects and ticks it once.
// Building a screen a second time fails with ErrScreenAlreadyBuilt and leaves
// the registry untouched.
func (c *Context) BuildScreen(id ScreenID) error {
	build, ok := builders[id]
	if !ok {
		return fmt.Errorf("build: %w: %d", ErrInvalidScreen, int(id))
	}
	if c.display == nil {
		return ErrUnavailable
	}
	if c.built[id] {
		return fmt.Errorf("build %s: %w", id, ErrScreenAlreadyBuilt)
	}

	build(c)
	c.built[id] = true
	c.log.Debug("Screen built", "screen", id.String())

	return c.TickScreenByID(id)
}

// Built reports whether the screen has been built.
func (c *Context) Built(id ScreenID) bool {
	return c.built[id]
}

// Load makes a built screen the active one.
func (c *Context) Load(id ScreenID) error {
	root, ok := screenRoots[id]
	if !ok {
		return fmt.Errorf("load: %w: %d", ErrInvalidScreen, int(id))
	}
	if !c.built[id] {
		return fmt.Errorf("load %s: %w", id, ErrScreenNotBuilt)
	}
	if err := c.display.Load(c.objects.slots[root]); err != nil {
		return fmt.Errorf("load %s: %w", id, err)
	}
	c.log.Debug("Screen loaded", "screen", id.String())
	return nil
}

// ActiveScreen returns the id of the screen currently shown.
func (c *Context) ActiveScreen() (ScreenID, bool) {
	if c.display == nil {
		return 0, false
	}
	active := c.display.Active()
	if active == nil {
		return 0, false
	}
	for id, root := range screenRoots {
		if c.objects.slots[root] == active {
			return id, true
		}
	}
	return 0, false
}

// root creates a screen object for id and registers it.
func (c *Context) root(id ScreenID) *widget.Object {
	obj := widget.NewScreen(c.display)
	c.objects.set(screenRoots[id], obj)
	obj.SetPos(0, 0).
		SetSize(c.display.Width(), c.display.Height()).
		SetBgColor(0xff000000)
	return obj
}

// statusLabel is the green-on-black label used throughout the panel.
func statusLabel(parent *widget.Object, x, y, w, h int32, text string) *widget.Object {
	return widget.NewLabel(parent).
		SetPos(x, y).
		SetSize(w, h).
		SetBgOpa(255).
		SetBgColor(0xff000000).
		SetTextColor(0xff00ff00).
		SetText(text)
}

// navButton is a 100x50 button with a centred caption.
func navButton(parent *widget.Object, x, y int32, caption string) *widget.Object {
	btn := widget.NewButton(parent).SetPos(x, y).SetSize(100, 50)
	widget.NewLabel(btn).
		SetPos(0, 0).
		SetSize(widget.SizeContent, widget.SizeContent).
		SetAlign(widget.AlignCenter).
		SetText(caption)
	return btn
}

func indicatorLED(parent *widget.Object, x, y, w, h int32, rgb uint32) *widget.Object {
	return widget.NewLED(parent).
		SetPos(x, y).
		SetSize(w, h).
		SetLEDColor(rgb).
		SetBrightness(255)
}
