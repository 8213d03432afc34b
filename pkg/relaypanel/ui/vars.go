package ui

import (
	"fmt"

	"go.uber.org/atomic"
)

// VariableID is the stable index of a panel variable.
type VariableID int

const (
	VarLEDColour VariableID = iota
)

// DefaultLEDColour is the initial value of VarLEDColour, as 0xRRGGBB.
const DefaultLEDColour int32 = 0xFF0000

// Vars holds the panel variables read by tick hooks and written by actions.
// Values live for the process and are not persisted.
type Vars struct {
	ledColour *atomic.Int32
}

// NewVars returns a store with every variable at its default.
func NewVars() *Vars {
	return &Vars{
		ledColour: atomic.NewInt32(DefaultLEDColour),
	}
}

// LEDColour returns the colour of the alarm state LED.
func (v *Vars) LEDColour() int32 {
	return v.ledColour.Load()
}

// SetLEDColour replaces the alarm state LED colour. Any value is accepted.
func (v *Vars) SetLEDColour(value int32) {
	v.ledColour.Store(value)
}

// Get reads a variable by index.
func (v *Vars) Get(id VariableID) (int32, error) {
	switch id {
	case VarLEDColour:
		return v.LEDColour(), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownVariable, int(id))
}

// Set writes a variable by index.
func (v *Vars) Set(id VariableID, value int32) error {
	switch id {
	case VarLEDColour:
		v.SetLEDColour(value)
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownVariable, int(id))
}
