package ui

import (
	"fmt"

	"github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"
)

// Objects maps widget names to the handles created by the screen builders.
// Handles are owned by the display; slots are filled once when their screen is
// built and never cleared.
type Objects struct {
	slots [objectCount]*widget.Object
}

// Get returns the handle stored for name.
func (o *Objects) Get(name ObjectName) (*widget.Object, error) {
	if !name.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObject, int(name))
	}
	obj := o.slots[name]
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotBuilt, name)
	}
	return obj, nil
}

// Lookup resolves a handle by its symbolic name.
func (o *Objects) Lookup(name string) (*widget.Object, error) {
	n, ok := ParseObjectName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	return o.Get(n)
}

func (o *Objects) set(name ObjectName, obj *widget.Object) {
	o.slots[name] = obj
}

// Names lists the names owned by a screen, whether or not it is built yet.
func (o *Objects) Names(id ScreenID) []ObjectName {
	return ScreenObjects(id)
}
