// Command relaypanel runs the touch panel of a relay node.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/relaypanel/internal/node"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/config"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/locale"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/theme"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/touch"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/ui"
)

var configFlag = flag.String("config", "", "Path to the TOML config file (default $RELAYPANEL_CONFIG)")

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "relaypanel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, undecoded, err := config.Load(config.Path(*configFlag))
	if err != nil {
		return err
	}

	panelTheme := theme.Default(theme.Palette(cfg.Theme.Primary), theme.Palette(cfg.Theme.Secondary),
		cfg.Theme.Dark, cfg.Theme.FontPath)
	panelTheme.FontSize = cfg.Theme.FontSize

	panel, err := relaypanel.Init(relaypanel.Options{
		WindowTitle:  cfg.Display.Title,
		CanvasWidth:  cfg.Display.Width,
		CanvasHeight: cfg.Display.Height,
		WindowOptions: relaypanel.WindowOptions{
			Fullscreen: cfg.Display.Fullscreen,
			Borderless: cfg.Display.Borderless,
		},
		Theme:       panelTheme,
		TouchDevice: cfg.Touch.Device,
		Calibration: touch.Calibration{
			MinX:    cfg.Touch.MinX,
			MaxX:    cfg.Touch.MaxX,
			MinY:    cfg.Touch.MinY,
			MaxY:    cfg.Touch.MaxY,
			SwapXY:  cfg.Touch.SwapXY,
			InvertX: cfg.Touch.InvertX,
			InvertY: cfg.Touch.InvertY,
		},
		LogPath:  cfg.Log.Path,
		LogLevel: cfg.Log.Level,
	})
	if err != nil {
		return err
	}
	defer panel.Close()

	logger := relaypanel.GetLogger()
	if len(undecoded) > 0 {
		logger.Warn("Unknown config keys ignored", "keys", undecoded)
	}

	catalog, err := locale.New(cfg.Locale.Language)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var uplink node.Uplink
	if cfg.Node.UplinkURL != "" {
		uplink = node.NewHTTPUplink(cfg.Node.UplinkURL, cfg.Node.Timeout)
	}
	app := node.New(ctx, cfg.Node.ID, uplink, logger.With("node", cfg.Node.ID))

	screens := ui.New(panel.Display(), app,
		ui.WithTheme(panelTheme),
		ui.WithTranslator(catalog),
		ui.WithLogger(logger),
	)
	if err := app.Install(screens); err != nil {
		return err
	}
	if err := screens.CreateScreens(); err != nil {
		return err
	}
	if err := screens.Load(ui.ScreenMain); err != nil {
		return err
	}

	logger.Info("Panel running", "language", catalog.Language().String(), "uplink", cfg.Node.UplinkURL != "")
	return panel.Run(ctx, screens.TickActive)
}
