package relaypanel

import (
	"errors"
	"fmt"
)

// InfrastructureError is a host-level failure: SDL would not start, the
// font is missing, the window could not be created. The panel cannot be
// shown when one is returned.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "sdl_init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relaypanel: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("relaypanel: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
