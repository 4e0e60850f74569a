// Package flagcell provides a single-threaded shared cell whose value can be
// logically disabled without being freed.
//
// An Owner is the single privileged holder of the value. It mints Handles,
// decides whether the value is enabled, and is the only holder able to
// extract the value. Handles are cheap, cloneable observers which must check
// every access through an Outcome, since the value may be disabled, borrowed
// or gone by the time they look at it.
//
// The storage stays alive while the owner or any handle holds it. Closing the
// owner disables the value; handles that outlive it observe Disabled until
// one of them force-enables the value again. A handle never turns back into
// an owner.
//
// None of the types are safe for concurrent use.
package flagcell

import (
	"github.com/flagcell/flagcell/std/log"
	"github.com/flagcell/flagcell/std/types/optional"
	"github.com/flagcell/flagcell/std/types/rc"
)

// noCopy is caught by go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owner is the single privileged holder of a cell value.
// An Owner must not be copied after first use.
type Owner[T any] struct {
	noCopy noCopy
	r      *rc.Rc[*block[T]]
}

// New creates an enabled cell holding value, with no handles.
func New[T any](value T) *Owner[T] {
	return NewWithFinalizer(value, nil)
}

// NewWithFinalizer is like New, and calls fin with the value if it is still
// stored when the cell storage is released.
func NewWithFinalizer[T any](value T, fin func(T)) *Owner[T] {
	return &Owner[T]{r: newShared(value, fin)}
}

// String returns the log tag of an owner.
func (o *Owner[T]) String() string {
	return "flagcell-owner"
}

// NewHandle mints a handle on the cell. The cell need not be enabled.
// Panics if the owner was closed or its value extracted.
func (o *Owner[T]) NewHandle() *Handle[T] {
	if o.r == nil {
		panic(ErrReleased)
	}
	o.r.Inc()
	return &Handle[T]{r: o.r}
}

// IsEnabled returns true if the value is logically enabled.
func (o *Owner[T]) IsEnabled() bool {
	return o.r != nil && o.r.Load().enabled
}

// Enable enables the value. It returns None if it was already enabled.
func (o *Owner[T]) Enable() optional.Optional[optional.Unit] {
	if o.r == nil || !o.r.Load().enable() {
		return optional.None[optional.Unit]()
	}
	return optional.Some(optional.Unit{})
}

// Disable disables the value for every handle until Enable is called.
// It returns None if it was already disabled.
func (o *Owner[T]) Disable() optional.Optional[optional.Unit] {
	if o.r == nil || !o.r.Load().disable() {
		return optional.None[optional.Unit]()
	}
	return optional.Some(optional.Unit{})
}

// RefCount returns the number of live handles. The owner is not counted.
func (o *Owner[T]) RefCount() int {
	if o.r == nil {
		return 0
	}
	return handles(o.r)
}

// TryExtract moves the value out and releases the owner. It requires the
// value to be enabled, no live handle and no outstanding borrow.
// On failure the owner is left untouched.
func (o *Owner[T]) TryExtract() (v T, err error) {
	if o.r == nil {
		return v, ErrReleased
	}
	b := o.r.Load()
	switch {
	case !b.enabled:
		return v, ErrDisabled
	case handles(o.r) > 0:
		return v, ErrBusy
	case b.borrow != 0:
		return v, ErrConflict
	}

	v = b.take()
	b.enabled = false
	o.drop()
	log.Trace(o, "value extracted")
	return v, nil
}

// Extract is like TryExtract but panics with a *StateError on failure.
// Use it only where the precondition is a program invariant.
func (o *Owner[T]) Extract() T {
	n := o.RefCount()
	v, err := o.TryExtract()
	if err != nil {
		panic(&StateError{Op: "extract", Handles: n, Err: err})
	}
	return v
}

// Close disables the value and drops the owner. The storage is released now
// if no handle remains, otherwise when the last handle is released.
// Close is safe to call more than once.
func (o *Owner[T]) Close() {
	if o.r == nil {
		return
	}
	o.r.Load().enabled = false
	log.Trace(o, "owner closed", "handles", handles(o.r))
	o.drop()
}

func (o *Owner[T]) drop() {
	r := o.r
	o.r = nil
	r.Load().owned = false
	r.Dec()
}

// TryBorrow borrows the value for reading. The owner ignores the disabled flag.
func (o *Owner[T]) TryBorrow() Outcome[*Guard[T]] {
	if o.r == nil {
		return Empty[*Guard[T]]()
	}
	return borrow(o.r.Load())
}

// TryBorrowMut borrows the value for writing. The owner ignores the disabled flag.
func (o *Owner[T]) TryBorrowMut() Outcome[*MutGuard[T]] {
	if o.r == nil {
		return Empty[*MutGuard[T]]()
	}
	return borrowMut(o.r.Load())
}

// Borrow is like TryBorrow but panics with a *StateError on failure.
func (o *Owner[T]) Borrow() *Guard[T] {
	res := o.TryBorrow()
	if !res.Ok() {
		panic(&StateError{Op: "borrow", Handles: o.RefCount(), Err: res.Err()})
	}
	return res.Unwrap()
}

// BorrowMut is like TryBorrowMut but panics with a *StateError on failure.
func (o *Owner[T]) BorrowMut() *MutGuard[T] {
	res := o.TryBorrowMut()
	if !res.Ok() {
		panic(&StateError{Op: "borrow mut", Handles: o.RefCount(), Err: res.Err()})
	}
	return res.Unwrap()
}

// TryReplace swaps in v and returns the previous value.
// It fails with ErrConflict while any borrow is outstanding.
func (o *Owner[T]) TryReplace(v T) (old T, err error) {
	res := o.TryBorrowMut()
	if !res.Ok() {
		return old, res.Err()
	}
	g := res.Unwrap()
	defer g.Release()
	old = g.Get()
	g.Set(v)
	return old, nil
}

// Replace is like TryReplace but panics with a *StateError on failure.
func (o *Owner[T]) Replace(v T) T {
	old, err := o.TryReplace(v)
	if err != nil {
		panic(&StateError{Op: "replace", Handles: o.RefCount(), Err: err})
	}
	return old
}
