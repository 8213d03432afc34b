package ui

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/theme"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

func newTestContext(t *testing.T, actions Actions, opts ...Option) *Context {
	t.Helper()
	c := New(widget.NewDisplay(320, 240), actions, opts...)
	if err := c.CreateScreens(); err != nil {
		t.Fatalf("CreateScreens: %v", err)
	}
	return c
}

// press simulates a tap in the middle of obj.
func press(c *Context, obj *widget.Object) {
	r := c.Display().Bounds(obj)
	x, y := r.X+r.W/2, r.Y+r.H/2
	c.Display().PointerDown(x, y)
	c.Display().PointerUp(x, y)
}

func TestCreateScreensRegistersEveryObject(t *testing.T) {
	c := newTestContext(t, nil)

	for _, name := range ObjectNames() {
		obj, err := c.Objects().Get(name)
		if err != nil {
			t.Errorf("Get(%s): %v", name, err)
			continue
		}
		if obj == nil {
			t.Errorf("Get(%s) returned nil handle", name)
		}
	}
	for _, id := range Screens() {
		if !c.Built(id) {
			t.Errorf("screen %s not built", id)
		}
	}
	if got := len(c.Display().Screens()); got != ScreenCount {
		t.Fatalf("display has %d screens, want %d", got, ScreenCount)
	}
}

func TestCreateScreensAppliesTheme(t *testing.T) {
	want := theme.Default(theme.PaletteTeal, theme.PaletteAmber, true, "")
	c := newTestContext(t, nil, WithTheme(want))
	if got := c.Display().Theme(); got != want {
		t.Fatalf("display theme = %+v, want %+v", got, want)
	}
}

func TestCreateScreensWithoutDisplay(t *testing.T) {
	c := New(nil, nil)
	if err := c.CreateScreens(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("CreateScreens err = %v, want ErrUnavailable", err)
	}
}

func TestScreenRootsSizedToCanvas(t *testing.T) {
	c := New(widget.NewDisplay(480, 320), nil)
	if err := c.CreateScreens(); err != nil {
		t.Fatal(err)
	}
	for _, id := range Screens() {
		root := c.Object(screenRoots[id])
		if w, h := root.Size(); w != 480 || h != 320 {
			t.Errorf("%s root is %dx%d, want 480x320", id, w, h)
		}
		if !root.IsScreen() {
			t.Errorf("%s root is a %s", id, root.Kind())
		}
	}
}

func TestLookupBeforeBuild(t *testing.T) {
	c := New(widget.NewDisplay(320, 240), nil)

	if _, err := c.Objects().Get(ObjSwRelay1); !errors.Is(err, ErrObjectNotBuilt) {
		t.Fatalf("Get before build err = %v, want ErrObjectNotBuilt", err)
	}
	if err := c.BuildScreen(ScreenSettings); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Objects().Lookup("sw_relay1"); err != nil {
		t.Fatalf("Lookup(sw_relay1) after build: %v", err)
	}
	if _, err := c.Objects().Lookup("lbl_alarm_state"); !errors.Is(err, ErrObjectNotBuilt) {
		t.Fatalf("Lookup of main object err = %v, want ErrObjectNotBuilt", err)
	}
	if _, err := c.Objects().Lookup("no_such_widget"); !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("Lookup(unknown) err = %v, want ErrUnknownObject", err)
	}
	if _, err := c.Objects().Get(objectCount); !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("Get(out of range) err = %v, want ErrUnknownObject", err)
	}
}

func TestBuildTwiceLeavesRegistryIntact(t *testing.T) {
	c := newTestContext(t, nil)

	before := make(map[ObjectName]*widget.Object)
	for _, name := range ObjectNames() {
		before[name] = c.Object(name)
	}
	children := c.Object(ObjMain).ChildCount()

	err := c.BuildScreen(ScreenMain)
	if !errors.Is(err, ErrScreenAlreadyBuilt) {
		t.Fatalf("second BuildScreen err = %v, want ErrScreenAlreadyBuilt", err)
	}

	for _, name := range ObjectNames() {
		if c.Object(name) != before[name] {
			t.Errorf("registry slot %s changed after rejected rebuild", name)
		}
	}
	if got := c.Object(ObjMain).ChildCount(); got != children {
		t.Errorf("main has %d children after rebuild, want %d", got, children)
	}
	if got := len(c.Display().Screens()); got != ScreenCount {
		t.Errorf("display has %d screens after rebuild, want %d", got, ScreenCount)
	}
}

func TestBuildScreenInvalidID(t *testing.T) {
	c := New(widget.NewDisplay(320, 240), nil)
	for _, id := range []ScreenID{0, -1, ScreenStats + 1} {
		if err := c.BuildScreen(id); !errors.Is(err, ErrInvalidScreen) {
			t.Errorf("BuildScreen(%d) err = %v, want ErrInvalidScreen", id, err)
		}
	}
}

func TestBuildRunsInitialTick(t *testing.T) {
	c := New(widget.NewDisplay(320, 240), nil)
	ticks := 0
	if err := c.OnTick(ScreenStats, func(*Context) { ticks++ }); err != nil {
		t.Fatal(err)
	}
	if err := c.BuildScreen(ScreenStats); err != nil {
		t.Fatal(err)
	}
	if ticks != 1 {
		t.Fatalf("stats ticked %d times during build, want 1", ticks)
	}
}

func TestSwitchPayloadDisambiguates(t *testing.T) {
	var got []Event
	c := newTestContext(t, ActionFuncs{
		OnSwitchStateChanged: func(e Event) { got = append(got, e) },
	})
	if err := c.Load(ScreenSettings); err != nil {
		t.Fatal(err)
	}

	sw2 := c.Object(ObjSwRelay2)
	press(c, sw2)

	if len(got) != 1 {
		t.Fatalf("SwitchStateChanged called %d times, want 1", len(got))
	}
	e := got[0]
	p, ok := e.Payload.(RelayPayload)
	if !ok {
		t.Fatalf("payload is %T, want RelayPayload", e.Payload)
	}
	if p.Relay != Relay2 || int(p.Relay) != 1 {
		t.Fatalf("payload relay = %v, want relay2 (1)", p.Relay)
	}
	if e.Target != sw2 || e.Code != widget.EventValueChanged || e.Context != c {
		t.Fatalf("unexpected event %+v", e)
	}
	if !sw2.Checked() {
		t.Fatal("switch not toggled")
	}

	press(c, c.Object(ObjSwRelay1))
	if p := got[1].Payload.(RelayPayload); p.Relay != Relay1 {
		t.Fatalf("second payload relay = %v, want relay1", p.Relay)
	}
}

func TestButtonsRouteToActions(t *testing.T) {
	var calls []string
	record := func(name string) func(Event) {
		return func(e Event) {
			if _, ok := e.Payload.(NoPayload); !ok {
				t.Errorf("%s got payload %T, want NoPayload", name, e.Payload)
			}
			calls = append(calls, name)
		}
	}
	c := newTestContext(t, ActionFuncs{
		OnLoadSettings: record("settings"),
		OnLoadMain:     record("main"),
		OnLoadStats:    record("stats"),
		OnSendStates:   record("send"),
	})
	d := c.Display()

	tap := func(x, y int32) {
		d.PointerDown(x, y)
		d.PointerUp(x, y)
	}

	_ = c.Load(ScreenMain)
	tap(60, 205)  // Settings
	tap(262, 206) // Stats
	_ = c.Load(ScreenSettings)
	tap(60, 205)  // Main
	tap(262, 206) // Send
	_ = c.Load(ScreenStats)
	tap(60, 205) // Main

	want := []string{"settings", "stats", "main", "send", "main"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestLoadAndActiveScreen(t *testing.T) {
	c := New(widget.NewDisplay(320, 240), nil)
	if _, ok := c.ActiveScreen(); ok {
		t.Fatal("active screen reported before any load")
	}
	if err := c.Load(ScreenMain); !errors.Is(err, ErrScreenNotBuilt) {
		t.Fatalf("Load before build err = %v, want ErrScreenNotBuilt", err)
	}
	if err := c.Load(0); !errors.Is(err, ErrInvalidScreen) {
		t.Fatalf("Load(0) err = %v, want ErrInvalidScreen", err)
	}

	if err := c.CreateScreens(); err != nil {
		t.Fatal(err)
	}
	for _, id := range []ScreenID{ScreenStats, ScreenMain, ScreenSettings} {
		if err := c.Load(id); err != nil {
			t.Fatal(err)
		}
		if got, ok := c.ActiveScreen(); !ok || got != id {
			t.Fatalf("ActiveScreen = %v, %v; want %v", got, ok, id)
		}
	}
}

type prefixText string

func (p prefixText) Text(id, fallback string) string {
	if id == MsgNode {
		return string(p) + fallback
	}
	return fallback
}

func TestTranslatorSuppliesText(t *testing.T) {
	c := newTestContext(t, nil, WithTranslator(prefixText("> ")))
	if got := c.Object(ObjLblNode).Text(); got != "> Node" {
		t.Fatalf("lbl_node text = %q", got)
	}
	if got := c.Object(ObjLblAlarmState).Text(); got != "Alarm State" {
		t.Fatalf("lbl_alarm_state text = %q", got)
	}
}

func TestObjectsNamesPerScreen(t *testing.T) {
	c := New(widget.NewDisplay(320, 240), nil)

	total := 0
	for _, id := range Screens() {
		names := c.Objects().Names(id)
		if len(names) == 0 {
			t.Errorf("%s owns no objects", id)
		}
		for _, n := range names {
			if n.Screen() != id {
				t.Errorf("%s listed under %s but owned by %s", n, id, n.Screen())
			}
		}
		total += len(names)
	}
	if total != len(ObjectNames()) {
		t.Errorf("screens own %d names, want %d", total, len(ObjectNames()))
	}
}
