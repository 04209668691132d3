// Package optional provides a Value type for results that may be absent, such as
// reading a position that holds no element. It replaces (value, ok) pairs and
// nil sentinels at API boundaries.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a present Value, or None() for an absent one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All returns an iterator that yields the value if present, or nothing if empty.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value if present, or panics if empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Equals reports whether both Values are empty, or both hold values equal under eq.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the value inside o. Returns Some(f(value)) if present, None otherwise.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// FlatMap chains an optional-returning lookup onto o.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if o.isSet {
		return f(o.value)
	}

	return None[U]()
}
