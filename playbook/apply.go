package playbook

import (
	"context"
	"fmt"
	"io"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/reorderable/errors"
	"github.com/amp-labs/reorderable/logger"
	"github.com/amp-labs/reorderable/reorderable"
)

type applyOptions struct {
	strict bool
}

// Option configures Apply.
type Option func(*applyOptions)

// Strict makes Apply fail on the first out-of-range index instead of treating
// the operation as a no-op.
func Strict() Option {
	return func(o *applyOptions) {
		o.strict = true
	}
}

// Run builds a list from pb.Items and applies pb.Ops to it.
func Run(ctx context.Context, pb *Playbook) (reorderable.Reorderable[string], error) {
	var opts []Option
	if pb.Strict {
		opts = append(opts, Strict())
	}

	return Apply(ctx, reorderable.FromSlice(pb.Items), pb.Ops, opts...)
}

// Apply applies ops to r in order. On error it returns the list as it was
// before the failing op, and the error carries the op's position and name
// (see logger.ErrorAttrs). A canceled ctx stops the run between ops.
func Apply(
	ctx context.Context,
	r reorderable.Reorderable[string],
	ops []Op,
	opts ...Option,
) (reorderable.Reorderable[string], error) {
	var options applyOptions
	for _, opt := range opts {
		opt(&options)
	}

	log := logger.Get(ctx)

	for pos, op := range ops {
		if err := ctx.Err(); err != nil {
			return r, logger.AnnotateError(err, "position", pos)
		}

		next, err := applyOne(r, op, options.strict)
		if err != nil {
			return r, logger.AnnotateError(err, "position", pos, "op", op.Op)
		}

		log.Debug("applied op", "position", pos, "op", op.Op, "list", next.String())

		r = next
	}

	return r, nil
}

//nolint:cyclop
func applyOne(r reorderable.Reorderable[string], op Op, strict bool) (reorderable.Reorderable[string], error) {
	switch strings.ToLower(op.Op) {
	case "push":
		return r.Push(op.Value), nil
	case "insertat":
		if strict {
			return r.TryInsertAt(op.Index, op.Value)
		}

		return r.InsertAt(op.Index, op.Value), nil
	case "insertafter":
		if strict {
			return r.TryInsertAt(op.Index+1, op.Value)
		}

		return r.InsertAfter(op.Index, op.Value), nil
	case "drop":
		if strict {
			return r.TryDrop(op.Index)
		}

		return r.Drop(op.Index), nil
	case "set":
		if strict {
			return r.TrySet(op.Index, op.Value)
		}

		return r.Set(op.Index, op.Value), nil
	case "swap":
		if strict {
			return r.TrySwap(op.I, op.J)
		}

		return r.Swap(op.I, op.J), nil
	case "moveup":
		if strict {
			return r.TryMoveUp(op.Index)
		}

		return r.MoveUp(op.Index), nil
	case "movedown":
		if strict {
			return r.TryMoveDown(op.Index)
		}

		return r.MoveDown(op.Index), nil
	case "move":
		if strict {
			return r.TryMove(op.From, op.To)
		}

		return r.Move(op.From, op.To), nil
	case "reverse":
		return r.Reverse(), nil
	case "sort":
		return r.SortStableFunc(naturalCompare), nil
	default:
		return r, fmt.Errorf("%w: %q", errors.ErrUnknownOp, op.Op)
	}
}

func naturalCompare(a, b string) int {
	switch {
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Format writes one "key<TAB>value" line per element, in order.
func Format(w io.Writer, r reorderable.Reorderable[string]) error {
	for key, value := range r.Keyed() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", key, value); err != nil {
			return err
		}
	}

	return nil
}
