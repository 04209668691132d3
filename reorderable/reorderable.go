package reorderable

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/reorderable/optional"
)

// ID identifies an element for as long as it lives in a Reorderable.
// IDs are issued in increasing order starting at 0 and are never reused.
type ID int

// String renders the ID in decimal. This is the key format used by ToKeyedSlice.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

type entry[T any] struct {
	id    ID
	value T
}

// Reorderable is an ordered list of values, each carrying the ID it was
// assigned when it was inserted.
//
// The zero value is an empty list, equivalent to Empty. Reorderable has value
// semantics: operations return a new Reorderable and never write to memory
// that the receiver (or any earlier value) can observe.
//
// Thread-safety: a single Reorderable value is immutable and can be read from
// multiple goroutines. Replacing a shared variable with a new value is the
// caller's synchronization problem.
type Reorderable[T any] struct {
	nextID   ID
	elements []entry[T]
}

// Empty returns a list with no elements whose first issued ID will be 0.
func Empty[T any]() Reorderable[T] {
	return Reorderable[T]{}
}

// Singleton returns a list holding only value, with ID 0.
func Singleton[T any](value T) Reorderable[T] {
	return Empty[T]().Push(value)
}

// FromSlice builds a list from values in order, assigning IDs 0, 1, 2, ...
// It is equivalent to pushing each value onto Empty.
func FromSlice[T any](values []T) Reorderable[T] {
	if len(values) == 0 {
		return Empty[T]()
	}

	elements := make([]entry[T], len(values))
	for i, v := range values {
		elements[i] = entry[T]{id: ID(i), value: v}
	}

	return Reorderable[T]{
		nextID:   ID(len(values)),
		elements: elements,
	}
}

// FromSeq is FromSlice for an iterator.
func FromSeq[T any](values iter.Seq[T]) Reorderable[T] {
	var r Reorderable[T]

	for v := range values {
		r.elements = append(r.elements, entry[T]{id: r.nextID, value: v})
		r.nextID++
	}

	return r
}

// IsEmpty reports whether the list holds no elements.
func (r Reorderable[T]) IsEmpty() bool {
	return len(r.elements) == 0
}

// Len returns the number of elements. Valid indices are [0, Len()).
func (r Reorderable[T]) Len() int {
	return len(r.elements)
}

// NextID returns the ID the next inserted element will receive.
func (r Reorderable[T]) NextID() ID {
	return r.nextID
}

// Get returns the value at index, or None if index is out of range.
func (r Reorderable[T]) Get(index int) optional.Value[T] {
	if !r.inBounds(index) {
		return optional.None[T]()
	}

	return optional.Some(r.elements[index].value)
}

// ToSlice returns the values in order, without their IDs.
// The returned slice is a copy.
func (r Reorderable[T]) ToSlice() []T {
	values := make([]T, len(r.elements))
	for i, e := range r.elements {
		values[i] = e.value
	}

	return values
}

// All returns an iterator over (index, value) pairs in order.
func (r Reorderable[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range r.elements {
			if !yield(i, e.value) {
				return
			}
		}
	}
}

// Push appends value at the end under a fresh ID.
func (r Reorderable[T]) Push(value T) Reorderable[T] {
	return r.InsertAt(len(r.elements), value)
}

// InsertAt inserts value under a fresh ID so that it ends up at index.
// The index is clamped: anything below 0 inserts at the start, anything past
// the end appends.
func (r Reorderable[T]) InsertAt(index int, value T) Reorderable[T] {
	index = min(max(index, 0), len(r.elements))

	elements := make([]entry[T], 0, len(r.elements)+1)
	elements = append(elements, r.elements[:index]...)
	elements = append(elements, entry[T]{id: r.nextID, value: value})
	elements = append(elements, r.elements[index:]...)

	return Reorderable[T]{
		nextID:   r.nextID + 1,
		elements: elements,
	}
}

// InsertAfter inserts value immediately after the element at index.
// It is InsertAt(index+1, value), with the same clamping.
func (r Reorderable[T]) InsertAfter(index int, value T) Reorderable[T] {
	return r.InsertAt(index+1, value)
}

// Drop removes the element at index. An out-of-range index removes nothing.
// The ID counter is not rewound.
func (r Reorderable[T]) Drop(index int) Reorderable[T] {
	if !r.inBounds(index) {
		return r
	}

	return r.with(slices.Delete(slices.Clone(r.elements), index, index+1))
}

// Update replaces the value at index with fn applied to it, keeping its ID.
// An out-of-range index leaves the list unchanged and fn is not called.
func (r Reorderable[T]) Update(index int, fn func(T) T) Reorderable[T] {
	if !r.inBounds(index) {
		return r
	}

	elements := slices.Clone(r.elements)
	elements[index].value = fn(elements[index].value)

	return r.with(elements)
}

// Set replaces the value at index, keeping its ID.
func (r Reorderable[T]) Set(index int, value T) Reorderable[T] {
	return r.Update(index, func(T) T {
		return value
	})
}

// Swap exchanges the elements at i and j, IDs included.
// If either index is out of range the list is returned unchanged.
func (r Reorderable[T]) Swap(i, j int) Reorderable[T] {
	if !r.inBounds(i) || !r.inBounds(j) {
		return r
	}

	elements := slices.Clone(r.elements)
	elements[i], elements[j] = elements[j], elements[i]

	return r.with(elements)
}

// MoveUp moves the element at index one position towards the start.
func (r Reorderable[T]) MoveUp(index int) Reorderable[T] {
	return r.Swap(index-1, index)
}

// MoveDown moves the element at index one position towards the end.
func (r Reorderable[T]) MoveDown(index int) Reorderable[T] {
	return r.Swap(index, index+1)
}

// Move relocates the element at from so that it sits at to, shifting the
// elements in between by one. Every element keeps its ID.
//
// to is a position in the list with the moved element already taken out, and
// is clamped like InsertAt. So for [b c a], Move(2, 0) gives [a b c], and for
// [a c b], Move(2, 1) gives [a b c].
//
// If from is out of range, or from == to, the list is returned unchanged.
func (r Reorderable[T]) Move(from, to int) Reorderable[T] {
	if !r.inBounds(from) || from == to {
		return r
	}

	moved := r.elements[from]
	rest := slices.Delete(slices.Clone(r.elements), from, from+1)
	to = min(max(to, 0), len(rest))

	return r.with(slices.Insert(rest, to, moved))
}

// Reverse reverses the order of the elements. IDs travel with their values.
func (r Reorderable[T]) Reverse() Reorderable[T] {
	elements := slices.Clone(r.elements)
	slices.Reverse(elements)

	return r.with(elements)
}

// SortStableFunc reorders the elements by cmp, keeping equal elements in their
// current relative order. IDs travel with their values.
func (r Reorderable[T]) SortStableFunc(cmp func(a, b T) int) Reorderable[T] {
	elements := slices.Clone(r.elements)
	slices.SortStableFunc(elements, func(a, b entry[T]) int {
		return cmp(a.value, b.value)
	})

	return r.with(elements)
}

// String renders the list as [id:value ...], for debugging.
func (r Reorderable[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, e := range r.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%d:%v", e.id, e.value)
	}

	sb.WriteByte(']')

	return sb.String()
}

func (r Reorderable[T]) inBounds(index int) bool {
	return index >= 0 && index < len(r.elements)
}

// with returns a list sharing r's counter but holding elements.
// Callers must pass a slice that r does not own.
func (r Reorderable[T]) with(elements []entry[T]) Reorderable[T] {
	return Reorderable[T]{
		nextID:   r.nextID,
		elements: elements,
	}
}
