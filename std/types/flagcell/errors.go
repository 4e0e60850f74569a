package flagcell

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when the value is extracted while handles are still alive.
var ErrBusy = errors.New("value still has live handles")

// ErrDisabled is returned when the value is logically disabled.
var ErrDisabled = errors.New("value is disabled")

// ErrConflict is returned when a borrow overlaps an incompatible outstanding borrow.
var ErrConflict = errors.New("value is already borrowed")

// ErrAbsent is returned when the value was already extracted.
var ErrAbsent = errors.New("value was already extracted")

// ErrReleased is returned when an owner, handle or guard is used after release.
var ErrReleased = errors.New("reference already released")

// StateError is the panic value of the non-fallible owner operations.
type StateError struct {
	Op      string
	Handles int
	Err     error
}

// Error describes the failed operation.
func (e *StateError) Error() string {
	return fmt.Sprintf("flagcell: %s failed (handles=%d): %v", e.Op, e.Handles, e.Err)
}

// Unwrap returns the sentinel error.
func (e *StateError) Unwrap() error {
	return e.Err
}
