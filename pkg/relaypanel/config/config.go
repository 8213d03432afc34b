// Package config loads the panel configuration from a TOML file.
//
// Every field has a default, so a missing file or a file that sets only a few
// keys is valid. Unknown keys are reported back to the caller rather than
// rejected, so an older binary can still start with a newer file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/constants"
	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/theme"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config is the full panel configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Touch   TouchConfig   `toml:"touch"`
	Log     LogConfig     `toml:"log"`
	Locale  LocaleConfig  `toml:"locale"`
	Node    NodeConfig    `toml:"node"`
}

// DisplayConfig describes the logical canvas and the window holding it.
type DisplayConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Borderless bool   `toml:"borderless"`
}

// ThemeConfig selects the theme colours (0xRRGGBB) and font.
type ThemeConfig struct {
	Primary   uint32 `toml:"primary"`
	Secondary uint32 `toml:"secondary"`
	Dark      bool   `toml:"dark"`
	FontPath  string `toml:"font_path"`
	FontSize  int    `toml:"font_size"`
}

// TouchConfig describes a raw evdev touch controller. An empty device
// disables it; SDL mouse and finger input stay active either way.
type TouchConfig struct {
	Device  string `toml:"device"`
	MinX    int32  `toml:"min_x"`
	MaxX    int32  `toml:"max_x"`
	MinY    int32  `toml:"min_y"`
	MaxY    int32  `toml:"max_y"`
	SwapXY  bool   `toml:"swap_xy"`
	InvertX bool   `toml:"invert_x"`
	InvertY bool   `toml:"invert_y"`
}

// LogConfig controls the JSON log output.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// LocaleConfig selects the widget text language.
type LocaleConfig struct {
	Language string `toml:"language"`
}

// NodeConfig identifies the relay node and where it reports relay states.
type NodeConfig struct {
	ID        string        `toml:"id"`
	UplinkURL string        `toml:"uplink_url"`
	Timeout   time.Duration `toml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Title:  "Relay Panel",
			Width:  constants.DefaultCanvasWidth,
			Height: constants.DefaultCanvasHeight,
		},
		Theme: ThemeConfig{
			Primary:   uint32(theme.PaletteBlue),
			Secondary: uint32(theme.PaletteRed),
			FontPath:  "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			FontSize:  theme.DefaultFontSize,
		},
		Touch: TouchConfig{
			MaxX: 4095,
			MaxY: 4095,
		},
		Log: LogConfig{
			Level: "info",
		},
		Locale: LocaleConfig{
			Language: "en",
		},
		Node: NodeConfig{
			ID:      "node-1",
			Timeout: constants.DefaultUplinkTimeout,
		},
	}
}

// Path picks the config file: the explicit value if set, otherwise
// RELAYPANEL_CONFIG. It returns "" when neither is set.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(constants.ConfigPathEnvVar)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file or empty path yields the defaults. The returned keys are
// those present in the file but not understood.
func Load(path string) (Config, []string, error) {
	cfg := Default()
	var undecoded []string

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, nil, fmt.Errorf("config: decode %s: %w", path, err)
		default:
			undecoded = keys(md)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, undecoded, nil
}

// Decode reads TOML from r over the defaults without touching the environment.
func Decode(r io.Reader) (Config, []string, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, keys(md), nil
}

func keys(md toml.MetaData) []string {
	var out []string
	for _, k := range md.Undecoded() {
		out = append(out, k.String())
	}
	return out
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		c.Touch.Device = v
	}
	if constants.IsDevMode() {
		c.Display.Fullscreen = false
		c.Display.Borderless = false
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Theme.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("theme font_size %d must be positive", c.Theme.FontSize))
	}
	if c.Theme.Primary > 0xFFFFFF || c.Theme.Secondary > 0xFFFFFF {
		errs = append(errs, fmt.Errorf("theme colours must be 0xRRGGBB"))
	}
	if c.Touch.Device != "" && (c.Touch.MaxX <= c.Touch.MinX || c.Touch.MaxY <= c.Touch.MinY) {
		errs = append(errs, fmt.Errorf("touch range x[%d,%d] y[%d,%d] is empty",
			c.Touch.MinX, c.Touch.MaxX, c.Touch.MinY, c.Touch.MaxY))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Locale.Language != "" {
		if _, err := language.Parse(c.Locale.Language); err != nil {
			errs = append(errs, fmt.Errorf("locale language %q: %w", c.Locale.Language, err))
		}
	}
	if c.Node.UplinkURL != "" {
		u, err := url.Parse(c.Node.UplinkURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("node uplink_url %q must be an http or https URL", c.Node.UplinkURL))
		}
	}
	if c.Node.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("node timeout %s must be positive", c.Node.Timeout))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
