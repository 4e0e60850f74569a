package flagcell

import "fmt"

// Guard is a shared borrow of a cell value.
// Release must be called on every path, typically with defer.
type Guard[T any] struct {
	b *block[T]
}

// Get returns a copy of the borrowed value.
func (g *Guard[T]) Get() T {
	if g.b == nil {
		panic(ErrReleased)
	}
	return g.b.value
}

// Release ends the borrow. It is safe to call more than once.
func (g *Guard[T]) Release() {
	if g == nil || g.b == nil {
		return
	}
	b := g.b
	g.b = nil
	b.unborrow()
}

// String formats the borrowed value.
func (g *Guard[T]) String() string {
	if g.b == nil {
		return "<released>"
	}
	return fmt.Sprint(g.b.value)
}

// MutGuard is an exclusive borrow of a cell value.
type MutGuard[T any] struct {
	b *block[T]
}

// Get returns a copy of the borrowed value.
func (g *MutGuard[T]) Get() T {
	return *g.Ptr()
}

// Set overwrites the borrowed value.
func (g *MutGuard[T]) Set(v T) {
	*g.Ptr() = v
}

// Ptr returns a pointer to the stored value, valid until Release.
func (g *MutGuard[T]) Ptr() *T {
	if g.b == nil {
		panic(ErrReleased)
	}
	return &g.b.value
}

// Release ends the borrow. It is safe to call more than once.
func (g *MutGuard[T]) Release() {
	if g == nil || g.b == nil {
		return
	}
	b := g.b
	g.b = nil
	b.unborrow()
}

// String formats the borrowed value.
func (g *MutGuard[T]) String() string {
	if g.b == nil {
		return "<released>"
	}
	return fmt.Sprint(g.b.value)
}

func borrow[T any](b *block[T]) Outcome[*Guard[T]] {
	if k := b.acquire(false); k != KindValue {
		return failed[*Guard[T]](k)
	}
	return Value(&Guard[T]{b: b})
}

func borrowMut[T any](b *block[T]) Outcome[*MutGuard[T]] {
	if k := b.acquire(true); k != KindValue {
		return failed[*MutGuard[T]](k)
	}
	return Value(&MutGuard[T]{b: b})
}
