// Package errors holds the sentinel errors shared by the reorderable packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrIndexOutOfRange is returned by the strict container API when a position
	// does not address a live element (or insertion slot).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateID means two live elements carry the same identifier.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrIDOutOfRange means a live element carries an identifier that was never issued.
	ErrIDOutOfRange = errors.New("element id not below next id")

	// ErrUnknownOp is returned when a playbook names an operation that doesn't exist.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrUnsupportedFormat is returned when a playbook file has an unrecognized extension.
	ErrUnsupportedFormat = errors.New("unsupported playbook format")

	// ErrNoInput is returned by the reorder command when neither a playbook nor
	// an items file was given.
	ErrNoInput = errors.New("no input: pass -playbook or -items")
)

// Is reports whether any error in err's tree matches target. It is errors.Is,
// re-exported so callers importing this package don't need both.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when a check can find several problems and should report all of them.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
