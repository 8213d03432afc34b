// Package node is the relay node application behind the panel: it owns the
// relay states, answers the panel's actions and renders state on each tick.
package node

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/constants"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/ui"
)

// Alarm LED colours written to ui.VarLEDColour.
const (
	ColourAlarm int32 = 0xFF0000
	ColourOK    int32 = 0x00FF00
)

// LED brightness for lit and unlit indicators.
const (
	LEDOn  uint8 = 255
	LEDOff uint8 = 40
)

// resultQueueSize bounds finished sends waiting for the next tick.
const resultQueueSize = 8

type sendResult struct {
	report Report
	err    error
}

// App implements ui.Actions for one relay node.
//
// Everything but the uplink request runs on the UI goroutine. Sends run on
// their own goroutine and hand their result back through results, which the
// tick hooks drain.
type App struct {
	ctx    context.Context
	nodeID string
	uplink Uplink
	log    *slog.Logger

	results  chan sendResult
	inflight sync.WaitGroup

	relays   [2]bool
	retries  int
	ticks    int
	watchdog bool
}

// New creates the application. A nil uplink makes SendStates log only.
func New(ctx context.Context, nodeID string, uplink Uplink, log *slog.Logger) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{
		ctx:     ctx,
		nodeID:  nodeID,
		uplink:  uplink,
		log:     log,
		results: make(chan sendResult, resultQueueSize),
	}
}

// Relay reports the state of one relay.
func (a *App) Relay(r ui.Relay) bool {
	if r < ui.Relay1 || r > ui.Relay2 {
		return false
	}
	return a.relays[r]
}

// Retries is the number of failed uplink sends applied so far.
func (a *App) Retries() int {
	return a.retries
}

// Install registers the application's tick hooks on c.
func (a *App) Install(c *ui.Context) error {
	hooks := map[ui.ScreenID]ui.TickFunc{
		ui.ScreenMain:     a.tickMain,
		ui.ScreenSettings: a.tickSettings,
		ui.ScreenStats:    a.tickStats,
	}
	for id, fn := range hooks {
		if err := c.OnTick(id, fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) load(e ui.Event, id ui.ScreenID) {
	if err := e.Context.Load(id); err != nil {
		a.log.Error("Failed to load screen", "screen", id.String(), "error", err)
	}
}

func (a *App) LoadSettings(e ui.Event) { a.load(e, ui.ScreenSettings) }
func (a *App) LoadMain(e ui.Event)     { a.load(e, ui.ScreenMain) }
func (a *App) LoadStats(e ui.Event)    { a.load(e, ui.ScreenStats) }

func (a *App) SwitchStateChanged(e ui.Event) {
	switch p := e.Payload.(type) {
	case ui.RelayPayload:
		if p.Relay < ui.Relay1 || p.Relay > ui.Relay2 || e.Target == nil {
			a.log.Warn("Switch event for unknown relay", "relay", int(p.Relay))
			return
		}
		a.relays[p.Relay] = e.Target.Checked()
		a.log.Info("Relay switched", "relay", p.Relay.String(), "on", a.relays[p.Relay])
	default:
		a.log.Warn("Switch event without relay payload", "code", e.Code.String())
	}
}

// SendStates starts delivering the relay states and returns at once. The
// outcome is applied by the next tick.
func (a *App) SendStates(e ui.Event) {
	report := Report{Node: a.nodeID, Relays: a.relays}
	if a.uplink == nil {
		a.log.Info("No uplink configured, not sending", "node", report.Node, "relays", report.Relays)
		return
	}

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		err := a.uplink.Send(a.ctx, report)
		select {
		case a.results <- sendResult{report: report, err: err}:
		case <-a.ctx.Done():
		}
	}()
}

// Wait blocks until every started send has finished and queued its result.
func (a *App) Wait() {
	a.inflight.Wait()
}

// applyResults folds finished sends into the retry counter and the alarm
// LED colour. It runs on the UI goroutine.
func (a *App) applyResults(c *ui.Context) {
	for {
		select {
		case r := <-a.results:
			if r.err != nil {
				a.retries++
				c.Vars().SetLEDColour(ColourAlarm)
				a.log.Warn("Relay states not delivered", "retries", a.retries, "error", r.err)
				continue
			}
			c.Vars().SetLEDColour(ColourOK)
			a.log.Info("Relay states delivered", "node", r.report.Node, "relays", r.report.Relays)
		default:
			return
		}
	}
}

func brightness(on bool) uint8 {
	if on {
		return LEDOn
	}
	return LEDOff
}

func (a *App) stateText(c *ui.Context, on bool) string {
	if on {
		return c.T(ui.MsgEnabled)
	}
	return c.T(ui.MsgDisabled)
}

func (a *App) tickMain(c *ui.Context) {
	a.applyResults(c)
	c.Object(ui.ObjRelay1State).SetText(a.stateText(c, a.relays[ui.Relay1]))
	c.Object(ui.ObjRelay2State).SetText(a.stateText(c, a.relays[ui.Relay2]))
	c.Object(ui.ObjRelay1StateLED).SetBrightness(brightness(a.relays[ui.Relay1]))
	c.Object(ui.ObjRelay2StateLED).SetBrightness(brightness(a.relays[ui.Relay2]))
	c.Object(ui.ObjLEDState).SetLEDColor(uint32(c.Vars().LEDColour()))
	c.Object(ui.ObjLblNodeID).SetText(a.nodeID)

	a.ticks++
	if a.ticks%constants.WatchdogBlinkTicks == 0 {
		a.watchdog = !a.watchdog
	}
	c.Object(ui.ObjLEDWatchdog).SetBrightness(brightness(a.watchdog))
}

func (a *App) tickSettings(c *ui.Context) {
	a.applyResults(c)
	c.Object(ui.ObjSwRelay1).SetChecked(a.relays[ui.Relay1])
	c.Object(ui.ObjSwRelay2).SetChecked(a.relays[ui.Relay2])
	c.Object(ui.ObjLblNodeIDSettings).SetText(a.nodeID)
}

func (a *App) tickStats(c *ui.Context) {
	a.applyResults(c)
	c.Object(ui.ObjLblRetryCount).SetText(strconv.Itoa(a.retries))
}
