package flagcell

import (
	"github.com/flagcell/flagcell/std/log"
	"github.com/flagcell/flagcell/std/types/optional"
	"github.com/flagcell/flagcell/std/types/rc"
)

// Handle is a cloneable observer of a cell. It keeps the storage alive but
// grants no control over it. The zero Handle refers to no cell; every access
// through it reports Empty.
type Handle[T any] struct {
	r *rc.Rc[*block[T]]
}

// String returns the log tag of a handle.
func (h *Handle[T]) String() string {
	return "flagcell-handle"
}

// Clone returns a new handle on the same cell.
// Cloning an empty or released handle returns an empty handle.
func (h *Handle[T]) Clone() *Handle[T] {
	if h == nil || h.r == nil {
		return &Handle[T]{}
	}
	h.r.Inc()
	return &Handle[T]{r: h.r}
}

// Release drops the handle. The storage is released along with the last
// holder. Release is safe to call more than once.
func (h *Handle[T]) Release() {
	if h == nil || h.r == nil {
		return
	}
	r := h.r
	h.r = nil
	r.Dec()
}

// RefCount returns the number of live handles on the cell, this one included.
// The owner is not counted. An empty handle reports 0.
func (h *Handle[T]) RefCount() int {
	if h == nil || h.r == nil {
		return 0
	}
	return handles(h.r)
}

// IsEnabled returns true if the value is logically enabled.
func (h *Handle[T]) IsEnabled() bool {
	return h != nil && h.r != nil && h.r.Load().enabled
}

// UnsafeForceEnable enables the value regardless of the owner's decision,
// including after the owner was closed. It cannot break memory safety, but it
// overrides the owner's control; reason is logged for that audit trail.
// It reports Disabled when the handle no longer reaches any storage.
func (h *Handle[T]) UnsafeForceEnable(reason string) Outcome[optional.Unit] {
	if h == nil || h.r == nil {
		return Disabled[optional.Unit]()
	}
	b := h.r.Load()
	changed := b.enable()
	log.Warn(h, "value force enabled", "reason", reason, "owned", b.owned, "changed", changed)
	return Value(optional.Unit{})
}

// TryBorrow borrows the value for reading.
func (h *Handle[T]) TryBorrow() Outcome[*Guard[T]] {
	if h == nil || h.r == nil {
		return Empty[*Guard[T]]()
	}
	b := h.r.Load()
	if !b.enabled {
		return Disabled[*Guard[T]]()
	}
	return borrow(b)
}

// TryBorrowMut borrows the value for writing.
func (h *Handle[T]) TryBorrowMut() Outcome[*MutGuard[T]] {
	if h == nil || h.r == nil {
		return Empty[*MutGuard[T]]()
	}
	b := h.r.Load()
	if !b.enabled {
		return Disabled[*MutGuard[T]]()
	}
	return borrowMut(b)
}
