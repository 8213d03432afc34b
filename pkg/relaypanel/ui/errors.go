package ui

import "errors"

// Sentinel errors returned by the screen layer. Callers receive them wrapped
// with the offending id or name and should test with errors.Is.
var (
	// ErrUnavailable means there is no display to build on. Startup cannot continue.
	ErrUnavailable = errors.New("ui subsystem unavailable")

	// ErrInvalidScreen means a screen id or index is outside the registered range.
	ErrInvalidScreen = errors.New("invalid screen identifier")

	// ErrScreenAlreadyBuilt means a builder was invoked a second time.
	ErrScreenAlreadyBuilt = errors.New("screen already built")

	// ErrScreenNotBuilt means a screen was ticked or loaded before it was built.
	ErrScreenNotBuilt = errors.New("screen not built")

	// ErrObjectNotBuilt means a registry slot was read before its screen was built.
	ErrObjectNotBuilt = errors.New("object not built")

	// ErrUnknownObject means a registry name is not declared by any screen.
	ErrUnknownObject = errors.New("unknown object name")

	// ErrUnknownVariable means a variable index is not declared.
	ErrUnknownVariable = errors.New("unknown variable")
)
