// Package internal contains the SDL host for relaypanel: window setup,
// rendering of the widget tree, pointer input and logging.
// Types and functions in this package are not part of the public API.
package internal
