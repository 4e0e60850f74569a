package flagcell

import (
	"fmt"

	"github.com/flagcell/flagcell/std/types/optional"
)

// Kind is the variant of an Outcome.
type Kind uint8

const (
	// KindEmpty means no value is stored: it was extracted, or the handle is empty.
	KindEmpty Kind = iota
	// KindValue means the operation succeeded.
	KindValue
	// KindConflict means the borrow overlaps an incompatible outstanding borrow.
	KindConflict
	// KindDisabled means the value is logically disabled.
	KindDisabled
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindValue:
		return "Value"
	case KindConflict:
		return "Conflict"
	case KindDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// Outcome is the result of accessing a cell through a Handle.
// The zero Outcome is Empty.
type Outcome[T any] struct {
	kind  Kind
	value T
}

// Value creates a successful Outcome.
func Value[T any](v T) Outcome[T] {
	return Outcome[T]{kind: KindValue, value: v}
}

// Conflict creates a borrow conflict Outcome.
func Conflict[T any]() Outcome[T] {
	return Outcome[T]{kind: KindConflict}
}

// Empty creates an Outcome for a missing value.
func Empty[T any]() Outcome[T] {
	return Outcome[T]{kind: KindEmpty}
}

// Disabled creates an Outcome for a disabled value.
func Disabled[T any]() Outcome[T] {
	return Outcome[T]{kind: KindDisabled}
}

func failed[T any](k Kind) Outcome[T] {
	return Outcome[T]{kind: k}
}

// Kind returns the variant.
func (o Outcome[T]) Kind() Kind {
	return o.kind
}

// Ok returns true if the Outcome carries a value.
func (o Outcome[T]) Ok() bool {
	return o.kind == KindValue
}

// Get returns the value and whether it is present.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.kind == KindValue
}

// Unwrap returns the value or panics with the failure reason.
func (o Outcome[T]) Unwrap() T {
	if o.kind != KindValue {
		panic(fmt.Sprintf("called Outcome.Unwrap on %s", o.kind))
	}
	return o.value
}

// Option converts to an Optional, dropping the failure reason.
func (o Outcome[T]) Option() optional.Optional[T] {
	if o.kind == KindValue {
		return optional.Some(o.value)
	}
	return optional.None[T]()
}

// Err maps the failure kind to its sentinel error; nil on success.
func (o Outcome[T]) Err() error {
	switch o.kind {
	case KindValue:
		return nil
	case KindConflict:
		return ErrConflict
	case KindDisabled:
		return ErrDisabled
	default:
		return ErrAbsent
	}
}

// String formats a value as Value(v) and a failure as its kind.
func (o Outcome[T]) String() string {
	if o.kind == KindValue {
		return fmt.Sprintf("Value(%v)", o.value)
	}
	return o.kind.String()
}

// MapOutcome applies f to a successful value and keeps any failure kind.
func MapOutcome[A, B any](o Outcome[A], f func(A) B) Outcome[B] {
	if o.kind != KindValue {
		return failed[B](o.kind)
	}
	return Value(f(o.value))
}
