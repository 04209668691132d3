package reorderable

import (
	"fmt"

	"github.com/amp-labs/reorderable/errors"
	"github.com/amp-labs/reorderable/logger"
)

// The Try* methods mirror the positional operations but report an index that
// doesn't address an element instead of silently doing nothing. On failure
// they return the receiver unchanged together with an error wrapping
// errors.ErrIndexOutOfRange; the error carries "index" and "length" log
// attributes (see logger.ErrorAttrs).

// TryGet returns the value at index.
func (r Reorderable[T]) TryGet(index int) (T, error) {
	if err := r.checkIndex(index); err != nil {
		var zero T

		return zero, err
	}

	return r.elements[index].value, nil
}

// TryInsertAt is InsertAt without clamping: index must be in [0, Len()].
func (r Reorderable[T]) TryInsertAt(index int, value T) (Reorderable[T], error) {
	if index < 0 || index > len(r.elements) {
		return r, r.outOfRange(index)
	}

	return r.InsertAt(index, value), nil
}

// TryDrop is Drop for a valid index.
func (r Reorderable[T]) TryDrop(index int) (Reorderable[T], error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	return r.Drop(index), nil
}

// TryUpdate is Update for a valid index.
func (r Reorderable[T]) TryUpdate(index int, fn func(T) T) (Reorderable[T], error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	return r.Update(index, fn), nil
}

// TrySet is Set for a valid index.
func (r Reorderable[T]) TrySet(index int, value T) (Reorderable[T], error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	return r.Set(index, value), nil
}

// TrySwap is Swap for two valid indices. The first bad index is reported.
func (r Reorderable[T]) TrySwap(i, j int) (Reorderable[T], error) {
	if err := r.checkIndex(i); err != nil {
		return r, err
	}

	if err := r.checkIndex(j); err != nil {
		return r, err
	}

	return r.Swap(i, j), nil
}

// TryMoveUp fails when index is invalid or already first.
func (r Reorderable[T]) TryMoveUp(index int) (Reorderable[T], error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	return r.TrySwap(index-1, index)
}

// TryMoveDown fails when index is invalid or already last.
func (r Reorderable[T]) TryMoveDown(index int) (Reorderable[T], error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	return r.TrySwap(index, index+1)
}

// TryMove is Move with both positions validated. from must address an
// element; to is a position in the list without that element, so it must be
// in [0, Len()-1].
func (r Reorderable[T]) TryMove(from, to int) (Reorderable[T], error) {
	if err := r.checkIndex(from); err != nil {
		return r, err
	}

	if to < 0 || to >= len(r.elements) {
		return r, r.outOfRange(to)
	}

	return r.Move(from, to), nil
}

func (r Reorderable[T]) checkIndex(index int) error {
	if r.inBounds(index) {
		return nil
	}

	return r.outOfRange(index)
}

func (r Reorderable[T]) outOfRange(index int) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: index %d, length %d", errors.ErrIndexOutOfRange, index, len(r.elements)),
		"index", index,
		"length", len(r.elements))
}
