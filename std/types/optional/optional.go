package optional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unit is the empty value carried by an Optional that only signals presence.
type Unit struct{}

// Optional is a type that represents an optional value
type Optional[T any] struct {
	value T
	isSet bool
}

// IsSet returns true if the optional value is set
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// IsNone returns true if the optional value is not set
func (o Optional[T]) IsNone() bool {
	return !o.isSet
}

// Set sets the optional value
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset unsets the optional value and drops the stored value.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the optional value and a boolean indicating if the value is set
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the optional value or a default value if the value is not set
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the optional value or panics if the value is not set
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("Optional value is not set")
}

// String formats the value as Some(v) or None.
func (o Optional[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Some creates an optional value with the given value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None creates an optional value with no value set
func None[T any]() Optional[T] {
	return Optional[T]{isSet: false}
}

// Map applies f to a set value; an unset value stays unset.
func Map[A, B any](a Optional[A], f func(A) B) (out Optional[B]) {
	if a.isSet {
		out.Set(f(a.value))
	}
	return out
}

// CastInt converts an integer optional value to another type
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if a.IsSet() {
		out.Set(B(a.Unwrap()))
	}
	return out
}
