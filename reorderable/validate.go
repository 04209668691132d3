package reorderable

import (
	"fmt"

	"github.com/amp-labs/reorderable/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

// Validate checks that every live ID is unique and was issued by this list's
// counter. Lists built only through this package always pass.
// All violations are reported, joined into one error.
func (r Reorderable[T]) Validate() error {
	var errs errors.Collection

	seen := mapset.NewThreadUnsafeSet[ID]()

	for pos, e := range r.elements {
		if !seen.Add(e.id) {
			errs.Add(fmt.Errorf("%w: id %d at index %d", errors.ErrDuplicateID, e.id, pos))
		}

		if e.id < 0 || e.id >= r.nextID {
			errs.Add(fmt.Errorf("%w: id %d at index %d, next id %d", errors.ErrIDOutOfRange, e.id, pos, r.nextID))
		}
	}

	return errs.GetError()
}
