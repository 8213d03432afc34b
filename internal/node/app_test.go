package node

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/constants"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/ui"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

type fakeUplink struct {
	err error

	mu      sync.Mutex
	reports []Report
}

func (f *fakeUplink) Send(_ context.Context, r Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, r)
	return f.err
}

func (f *fakeUplink) sent() []Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Report(nil), f.reports...)
}

// gatedUplink holds every Send until release is closed.
type gatedUplink struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedUplink) Send(ctx context.Context, _ Report) error {
	g.started <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newPanel(t *testing.T, uplink Uplink) (*App, *ui.Context) {
	t.Helper()
	app := New(context.Background(), "node-7", uplink, nil)
	c := ui.New(widget.NewDisplay(320, 240), app)
	if err := app.Install(c); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := c.CreateScreens(); err != nil {
		t.Fatalf("CreateScreens: %v", err)
	}
	return app, c
}

func tap(c *ui.Context, name ui.ObjectName) {
	r := c.Display().Bounds(c.Object(name))
	x, y := r.X+r.W/2, r.Y+r.H/2
	c.Display().PointerDown(x, y)
	c.Display().PointerUp(x, y)
}

func tapAt(c *ui.Context, x, y int32) {
	c.Display().PointerDown(x, y)
	c.Display().PointerUp(x, y)
}

func loaded(t *testing.T, c *ui.Context) ui.ScreenID {
	t.Helper()
	id, ok := c.ActiveScreen()
	if !ok {
		t.Fatal("no active screen")
	}
	return id
}

func TestInitialTickRendersState(t *testing.T) {
	_, c := newPanel(t, nil)

	if got := c.Object(ui.ObjRelay1State).Text(); got != "Disabled" {
		t.Errorf("relay1_state = %q, want Disabled", got)
	}
	if got := c.Object(ui.ObjLblNodeID).Text(); got != "node-7" {
		t.Errorf("lbl_node_id = %q, want node-7", got)
	}
	if got := c.Object(ui.ObjLblNodeIDSettings).Text(); got != "node-7" {
		t.Errorf("lbl_node_id_1 = %q, want node-7", got)
	}
	if got := c.Object(ui.ObjRelay1StateLED).Brightness(); got != LEDOff {
		t.Errorf("relay1 LED brightness = %d, want %d", got, LEDOff)
	}
	if got := c.Object(ui.ObjLblRetryCount).Text(); got != "0" {
		t.Errorf("lbl_retry_count = %q, want 0", got)
	}
}

func TestNavigation(t *testing.T) {
	_, c := newPanel(t, nil)
	if err := c.Load(ui.ScreenMain); err != nil {
		t.Fatal(err)
	}

	tapAt(c, 60, 205) // Settings
	if got := loaded(t, c); got != ui.ScreenSettings {
		t.Fatalf("after Settings tap active = %s", got)
	}
	tapAt(c, 60, 205) // Main
	if got := loaded(t, c); got != ui.ScreenMain {
		t.Fatalf("after Main tap active = %s", got)
	}
	tapAt(c, 262, 206) // Stats
	if got := loaded(t, c); got != ui.ScreenStats {
		t.Fatalf("after Stats tap active = %s", got)
	}
}

func TestSwitchUpdatesRelayAndMainScreen(t *testing.T) {
	app, c := newPanel(t, nil)
	if err := c.Load(ui.ScreenSettings); err != nil {
		t.Fatal(err)
	}

	tap(c, ui.ObjSwRelay2)
	if !app.Relay(ui.Relay2) || app.Relay(ui.Relay1) {
		t.Fatalf("relays = %v/%v, want relay2 only", app.Relay(ui.Relay1), app.Relay(ui.Relay2))
	}

	if err := c.TickActive(); err != nil {
		t.Fatal(err)
	}
	if !c.Object(ui.ObjSwRelay2).Checked() {
		t.Error("settings tick unchecked sw_relay2")
	}

	if err := c.TickScreenByID(ui.ScreenMain); err != nil {
		t.Fatal(err)
	}
	if got := c.Object(ui.ObjRelay2State).Text(); got != "Enabled" {
		t.Errorf("relay2_state = %q, want Enabled", got)
	}
	if got := c.Object(ui.ObjRelay2StateLED).Brightness(); got != LEDOn {
		t.Errorf("relay2 LED brightness = %d, want %d", got, LEDOn)
	}
}

func TestSwitchWithoutPayloadIgnored(t *testing.T) {
	app, c := newPanel(t, nil)
	sw := c.Object(ui.ObjSwRelay1).SetChecked(true)

	app.SwitchStateChanged(ui.Event{Code: widget.EventValueChanged, Target: sw, Payload: ui.NoPayload{}, Context: c})
	app.SwitchStateChanged(ui.Event{Code: widget.EventValueChanged, Target: sw, Payload: ui.RelayPayload{Relay: 5}, Context: c})

	if app.Relay(ui.Relay1) || app.Relay(ui.Relay2) {
		t.Error("relay changed by an event without a valid relay payload")
	}
}

func TestSendStates(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantRetries int
		wantColour  int32
	}{
		{"delivered", nil, 0, ColourOK},
		{"failed", errors.New("unreachable"), 1, ColourAlarm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeUplink{err: tt.err}
			app, c := newPanel(t, up)
			if err := c.Load(ui.ScreenSettings); err != nil {
				t.Fatal(err)
			}

			tap(c, ui.ObjSwRelay1)
			tapAt(c, 262, 206) // Send
			app.Wait()

			reports := up.sent()
			if len(reports) != 1 {
				t.Fatalf("sent %d reports, want 1", len(reports))
			}
			want := Report{Node: "node-7", Relays: [2]bool{true, false}}
			if reports[0] != want {
				t.Errorf("report = %+v, want %+v", reports[0], want)
			}

			if err := c.TickActive(); err != nil {
				t.Fatal(err)
			}
			if app.Retries() != tt.wantRetries {
				t.Errorf("retries = %d, want %d", app.Retries(), tt.wantRetries)
			}
			if got := c.Vars().LEDColour(); got != tt.wantColour {
				t.Errorf("LED colour = %#x, want %#x", got, tt.wantColour)
			}

			if err := c.TickScreenByID(ui.ScreenMain); err != nil {
				t.Fatal(err)
			}
			if got := c.Object(ui.ObjLEDState).LEDColor(); got != uint32(tt.wantColour) {
				t.Errorf("led_state colour = %#x, want %#x", got, tt.wantColour)
			}
		})
	}
}

func TestRetryCountShownOnStats(t *testing.T) {
	up := &fakeUplink{err: errors.New("timeout")}
	app, c := newPanel(t, up)
	if err := c.Load(ui.ScreenSettings); err != nil {
		t.Fatal(err)
	}

	for range 3 {
		tapAt(c, 262, 206)
	}
	app.Wait()
	if app.Retries() != 0 {
		t.Fatalf("retries = %d before a tick, want 0", app.Retries())
	}

	if err := c.TickScreenByID(ui.ScreenStats); err != nil {
		t.Fatal(err)
	}
	if app.Retries() != 3 {
		t.Fatalf("retries = %d, want 3", app.Retries())
	}
	if got := c.Object(ui.ObjLblRetryCount).Text(); got != "3" {
		t.Errorf("lbl_retry_count = %q, want 3", got)
	}
}

func TestSendStatesDoesNotBlockOnSlowUplink(t *testing.T) {
	up := &gatedUplink{started: make(chan struct{}, 1), release: make(chan struct{})}
	app, c := newPanel(t, up)
	if err := c.Load(ui.ScreenSettings); err != nil {
		t.Fatal(err)
	}

	returned := make(chan struct{})
	go func() {
		tapAt(c, 262, 206) // Send
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		close(up.release)
		t.Fatal("Send tap blocked on the uplink")
	}

	<-up.started
	if err := c.TickActive(); err != nil {
		t.Fatal(err)
	}
	if got := c.Vars().LEDColour(); got != ui.DefaultLEDColour {
		t.Errorf("LED colour = %#x while the send is pending, want default", got)
	}

	close(up.release)
	app.Wait()
	if err := c.TickActive(); err != nil {
		t.Fatal(err)
	}
	if got := c.Vars().LEDColour(); got != ColourOK {
		t.Errorf("LED colour = %#x after delivery, want %#x", got, ColourOK)
	}
}

func TestSendWithoutUplink(t *testing.T) {
	app, c := newPanel(t, nil)
	if err := c.Load(ui.ScreenSettings); err != nil {
		t.Fatal(err)
	}
	tapAt(c, 262, 206)

	if app.Retries() != 0 {
		t.Errorf("retries = %d, want 0", app.Retries())
	}
	if got := c.Vars().LEDColour(); got != ui.DefaultLEDColour {
		t.Errorf("LED colour = %#x, want default", got)
	}
}

func TestWatchdogBlinks(t *testing.T) {
	_, c := newPanel(t, nil)
	led := c.Object(ui.ObjLEDWatchdog)

	// The build already ticked Main once.
	for i := 1; i < constants.WatchdogBlinkTicks; i++ {
		if led.Brightness() != LEDOff {
			t.Fatalf("watchdog lit after %d ticks", i)
		}
		if err := c.TickScreenByID(ui.ScreenMain); err != nil {
			t.Fatal(err)
		}
	}
	if led.Brightness() != LEDOn {
		t.Fatalf("watchdog not lit after %d ticks", constants.WatchdogBlinkTicks)
	}

	for range constants.WatchdogBlinkTicks {
		if err := c.TickScreenByID(ui.ScreenMain); err != nil {
			t.Fatal(err)
		}
	}
	if led.Brightness() != LEDOff {
		t.Error("watchdog still lit after a second period")
	}
}

func TestHTTPUplink(t *testing.T) {
	var (
		mu  sync.Mutex
		got Report
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	up := NewHTTPUplink(srv.URL, constants.DefaultUplinkTimeout)
	want := Report{Node: "node-2", Relays: [2]bool{false, true}}
	if err := up.Send(context.Background(), want); err != nil {
		t.Fatalf("Send: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if got != want {
		t.Errorf("server received %+v, want %+v", got, want)
	}
}

func TestHTTPUplinkStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPUplink(srv.URL, constants.DefaultUplinkTimeout).Send(context.Background(), Report{Node: "n"})
	if err == nil {
		t.Fatal("Send succeeded against a failing server")
	}
}

func TestHTTPUplinkTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	defer close(done)

	up := NewHTTPUplink(srv.URL, 20*time.Millisecond)
	err := up.Send(context.Background(), Report{Node: "n"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Send error = %v, want deadline exceeded", err)
	}
}
