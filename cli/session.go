package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/amp-labs/reorderable/logger"
	"github.com/amp-labs/reorderable/playbook"
	"github.com/amp-labs/reorderable/reorderable"
	"github.com/manifoldco/promptui"
)

const doneChoice = "[Done]"

// Actions offered for a selected item, in menu order.
const (
	ActionMoveUp      = "Move up"
	ActionMoveDown    = "Move down"
	ActionMoveTo      = "Move to position..."
	ActionEdit        = "Edit"
	ActionInsertAfter = "Insert after"
	ActionDrop        = "Drop"
	ActionBack        = "Back"
)

var actions = []string{ //nolint:gochecknoglobals
	ActionMoveUp, ActionMoveDown, ActionMoveTo, ActionEdit, ActionInsertAfter, ActionDrop, ActionBack,
}

// Session edits a list interactively. Every change is recorded as a
// playbook.Op, so a session can be replayed later.
type Session struct {
	prompter Prompter
	list     reorderable.Reorderable[string]
	history  []playbook.Op
}

// NewSession starts a session over list.
func NewSession(prompter Prompter, list reorderable.Reorderable[string]) *Session {
	return &Session{prompter: prompter, list: list}
}

// List returns the current state of the list.
func (s *Session) List() reorderable.Reorderable[string] {
	return s.list
}

// History returns the operations applied so far.
func (s *Session) History() []playbook.Op {
	return s.history
}

// Run loops until the user picks [Done] or interrupts. An interrupt
// (Ctrl-C / Ctrl-D) ends the session without an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		idx, err := s.prompter.Select("Pick an item", s.choices())
		if err != nil {
			return ignoreInterrupt(err)
		}

		if idx == 0 {
			return nil
		}

		if err := s.editItem(ctx, idx-1); err != nil {
			return ignoreInterrupt(err)
		}
	}
}

func (s *Session) choices() []string {
	items := make([]string, 0, s.list.Len()+1)
	items = append(items, doneChoice)

	for key, value := range s.list.Keyed() {
		items = append(items, fmt.Sprintf("%s  (#%s)", value, key))
	}

	return items
}

func (s *Session) editItem(ctx context.Context, index int) error {
	label := s.list.Get(index).GetOrElse("?")

	choice, err := s.prompter.Select(label, actions)
	if err != nil {
		return err
	}

	var op playbook.Op

	switch actions[choice] {
	case ActionMoveUp:
		op = playbook.Op{Op: "moveUp", Index: index}
	case ActionMoveDown:
		op = playbook.Op{Op: "moveDown", Index: index}
	case ActionMoveTo:
		to, err := s.prompter.PromptInt(fmt.Sprintf("New position (0-%d)", s.list.Len()-1))
		if err != nil {
			return err
		}

		op = playbook.Op{Op: "move", From: index, To: to}
	case ActionEdit:
		value, err := s.prompter.PromptString("New value")
		if err != nil {
			return err
		}

		op = playbook.Op{Op: "set", Index: index, Value: value}
	case ActionInsertAfter:
		value, err := s.prompter.PromptString("Value to insert")
		if err != nil {
			return err
		}

		op = playbook.Op{Op: "insertAfter", Index: index, Value: value}
	case ActionDrop:
		op = playbook.Op{Op: "drop", Index: index}
	default:
		return nil
	}

	next, err := playbook.Apply(ctx, s.list, []playbook.Op{op})
	if err != nil {
		return err
	}

	logger.Get(ctx).Info("edited list", "op", op.Op, "list", next.String())

	s.list = next
	s.history = append(s.history, op)

	return nil
}

func ignoreInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}

	return err
}
