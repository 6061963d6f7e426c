package pillnav

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user left the screen (pressed back, closed
	// the window). This is a normal flow control error, not an
	// infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized is returned by screens when Init has not run.
	ErrNotInitialized = errors.New("pillnav not initialized")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with pillnav itself (SDL failed to start, font
// missing, menu resource unreadable, etc.).
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_menu")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pillnav: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pillnav: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
