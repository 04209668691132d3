package reorderable

import (
	"iter"
	"strconv"

	"github.com/amp-labs/reorderable/optional"
)

// KeyedValue pairs a value with its element ID rendered as a decimal string.
// This is the shape key-based renderers consume.
type KeyedValue[T any] struct {
	Key   string
	Value T
}

// ToKeyedSlice returns the (key, value) pairs in order. Keys are the element
// IDs in decimal, so a value keeps its key no matter where it moves.
func (r Reorderable[T]) ToKeyedSlice() []KeyedValue[T] {
	keyed := make([]KeyedValue[T], len(r.elements))
	for i, e := range r.elements {
		keyed[i] = KeyedValue[T]{Key: e.id.String(), Value: e.value}
	}

	return keyed
}

// Keyed returns an iterator over (key, value) pairs in order.
func (r Reorderable[T]) Keyed() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, e := range r.elements {
			if !yield(e.id.String(), e.value) {
				return
			}
		}
	}
}

// IDAt returns the ID of the element at index, or None if index is out of range.
func (r Reorderable[T]) IDAt(index int) optional.Value[ID] {
	if !r.inBounds(index) {
		return optional.None[ID]()
	}

	return optional.Some(r.elements[index].id)
}

// KeyAt returns the key of the element at index, or None if index is out of range.
func (r Reorderable[T]) KeyAt(index int) optional.Value[string] {
	return optional.Map(r.IDAt(index), ID.String)
}

// IndexOfID returns the current position of the element with the given ID,
// or None if no live element has it.
func (r Reorderable[T]) IndexOfID(id ID) optional.Value[int] {
	for i, e := range r.elements {
		if e.id == id {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// IndexOfKey is IndexOfID for a key produced by ToKeyedSlice.
// Strings that are not a canonical decimal ID never match.
func (r Reorderable[T]) IndexOfKey(key string) optional.Value[int] {
	id, ok := parseKey(key)
	if !ok {
		return optional.None[int]()
	}

	return r.IndexOfID(id)
}

// GetByKey returns the value whose key is key, or None.
func (r Reorderable[T]) GetByKey(key string) optional.Value[T] {
	return optional.FlatMap(r.IndexOfKey(key), r.Get)
}

func parseKey(key string) (ID, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 {
		return 0, false
	}

	// Reject "+1", "007" and friends: keys are only ever rendered one way.
	if strconv.Itoa(n) != key {
		return 0, false
	}

	return ID(n), true
}
