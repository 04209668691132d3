// Package reorderable provides Reorderable, an ordered list whose elements keep a
// stable identity while they are swapped, moved, inserted and dropped.
//
// Every element is tagged with an ID when it enters the list. IDs come from a
// counter that only grows, so an ID is never handed out twice, even after the
// element that held it has been dropped. The IDs are what a keyed renderer (a
// UI reconciler, a diffing view layer) needs: ToKeyedSlice pairs every value
// with its ID rendered as a decimal string.
//
// A Reorderable is a value. Every operation returns a new Reorderable and
// leaves the receiver untouched, so holding on to an older value is a cheap
// snapshot:
//
//	list := reorderable.FromSlice([]string{"a", "b", "c"})
//	swapped := list.Swap(0, 2)
//
//	swapped.ToKeyedSlice() // [{2 c} {1 b} {0 a}]
//	list.ToSlice()         // [a b c]
//
// Positional operations never fail. An index that doesn't address an element
// turns the operation into a no-op (Swap, Drop, Update, Set, Move, MoveUp,
// MoveDown) or an absent result (Get). Insertion positions are clamped to the
// ends of the list. Callers that would rather hear about a bad index can use
// the Try* variants, which return errors.ErrIndexOutOfRange instead.
package reorderable
