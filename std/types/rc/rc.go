// Rc is a single-threaded reference counted generic type.
package rc

import (
	"fmt"
	"math"

	"github.com/flagcell/flagcell/std/types/optional"
)

// Rc is a reference counted generic type for use on a single goroutine.
// The free callback runs exactly once, when the count drops to zero.
type Rc[T any] struct {
	v    T
	c    int32
	free func(T)
}

// New creates a new Rc[T] holding one reference to v.
func New[T any](v T, free func(T)) *Rc[T] {
	return &Rc[T]{v: v, c: 1, free: free}
}

// Load returns the value of the Rc[T].
func (r *Rc[T]) Load() T {
	return r.v
}

// Count returns the number of live references.
func (r *Rc[T]) Count() int32 {
	return r.c
}

// Live returns the reference count, or None once the value was freed.
func (r *Rc[T]) Live() optional.Optional[int32] {
	if r.c == 0 {
		return optional.None[int32]()
	}
	return optional.Some(r.c)
}

// Inc increments the reference count and returns the new count.
// Panics if the value was already freed or the count would overflow.
func (r *Rc[T]) Inc() int32 {
	if r.c == 0 {
		panic("rc: retaining freed value")
	}
	if r.c == math.MaxInt32 {
		panic(fmt.Sprintf("rc: reference count overflow, max %d", math.MaxInt32))
	}
	r.c++
	return r.c
}

// Dec decrements the reference count and returns the new count.
// The free callback runs when the count reaches zero.
func (r *Rc[T]) Dec() int32 {
	if r.c == 0 {
		panic("rc: released too often")
	}
	r.c--
	if r.c == 0 && r.free != nil {
		r.free(r.v)
	}
	return r.c
}
