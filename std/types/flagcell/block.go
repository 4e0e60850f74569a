package flagcell

import (
	"github.com/flagcell/flagcell/std/log"
	"github.com/flagcell/flagcell/std/types/optional"
	"github.com/flagcell/flagcell/std/types/rc"
)

const exclusive = -1

// block is the storage shared by one Owner and its Handles.
// The rc count covers the owner (while owned) and every live handle.
type block[T any] struct {
	value    T
	present  bool
	enabled  bool
	owned    bool
	freed    bool
	borrow   int
	finalize func(T)
}

func newShared[T any](value T, finalize func(T)) *rc.Rc[*block[T]] {
	b := &block[T]{
		value:    value,
		present:  true,
		enabled:  true,
		owned:    true,
		finalize: finalize,
	}
	return rc.New(b, (*block[T]).free)
}

// handles returns the number of live handles on r, excluding the owner.
// Freed storage has none.
func handles[T any](r *rc.Rc[*block[T]]) int {
	n := optional.CastInt[int32, int](r.Live()).GetOr(0)
	if n > 0 && r.Load().owned {
		n--
	}
	return n
}

// enable sets the flag and reports whether it changed.
func (b *block[T]) enable() bool {
	if b.enabled {
		return false
	}
	b.enabled = true
	return true
}

// disable clears the flag and reports whether it changed.
func (b *block[T]) disable() bool {
	if !b.enabled {
		return false
	}
	b.enabled = false
	return true
}

// acquire records a shared or exclusive borrow.
func (b *block[T]) acquire(mut bool) Kind {
	if !b.present {
		return KindEmpty
	}
	if mut {
		if b.borrow != 0 {
			return KindConflict
		}
		b.borrow = exclusive
		return KindValue
	}
	if b.borrow == exclusive {
		return KindConflict
	}
	b.borrow++
	return KindValue
}

// unborrow undoes one acquire; storage freed while borrowed is dropped here.
func (b *block[T]) unborrow() {
	switch {
	case b.borrow == exclusive:
		b.borrow = 0
	case b.borrow > 0:
		b.borrow--
	}
	if b.borrow == 0 && b.freed {
		b.drop()
	}
}

// take moves the value out of the block.
func (b *block[T]) take() T {
	v := b.value
	var zero T
	b.value = zero
	b.present = false
	return v
}

// free runs once, when the last holder lets go.
func (b *block[T]) free() {
	b.freed = true
	b.enabled = false
	if b.borrow != 0 {
		log.Trace("flagcell", "storage release deferred", "borrow", b.borrow)
		return
	}
	b.drop()
}

func (b *block[T]) drop() {
	if !b.present {
		log.Trace("flagcell", "storage released")
		return
	}
	v := b.take()
	if b.finalize != nil {
		b.finalize(v)
	}
	log.Trace("flagcell", "storage released", "finalized", b.finalize != nil)
}
