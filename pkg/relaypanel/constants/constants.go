// Package constants defines shared constants and environment switches used
// throughout relaypanel.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar = "ENVIRONMENT"       // "DEV" runs in a desktop window
	ConfigPathEnvVar  = "RELAYPANEL_CONFIG" // Config file path when -config is not given
	LogLevelEnvVar    = "RELAYPANEL_LOG"    // Overrides [log].level
	TouchDeviceEnvVar = "RELAYPANEL_TOUCH"  // Overrides [touch].device
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Canvas defaults for the node's 2.8" panel.
const (
	DefaultCanvasWidth  int32 = 320
	DefaultCanvasHeight int32 = 240
)

// Default timing constants.
const (
	FrameInterval        = 16 * time.Millisecond // Target frame period when VSync is unavailable
	DefaultUplinkTimeout = 5 * time.Second       // Node uplink request timeout
	TouchQueueSize       = 64                    // Buffered touch events between reader and UI loop
	WatchdogBlinkTicks   = 30                    // Frames between watchdog LED toggles
)

// DevWindowScale enlarges the canvas window on a desktop.
const DevWindowScale int32 = 3
