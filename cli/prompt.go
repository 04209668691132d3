// Package cli holds the terminal prompts used by the reorder command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// Prompter asks the user questions. Terminal is the interactive implementation.
type Prompter interface {
	// Select shows items and returns the index of the chosen one.
	Select(label string, items []string) (int, error)

	// PromptString asks for a non-empty line of text.
	PromptString(label string) (string, error)

	// PromptInt asks for an integer.
	PromptInt(label string) (int, error)
}

// Terminal prompts on a terminal via promptui.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal returns a Terminal on the process's stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{Stdin: os.Stdin, Stdout: os.Stdout}
}

func (t *Terminal) Select(label string, items []string) (int, error) {
	sel := &promptui.Select{
		Label: label,
		Items: items,
		Size:  min(max(len(items), 1), 12), //nolint:mnd
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}

	idx, _, err := sel.Run()

	return idx, err
}

func (t *Terminal) PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if len(s) == 0 {
				return errEmptyInput
			}

			return nil
		},
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}

	return prompt.Run()
}

func (t *Terminal) PromptInt(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}

			return nil
		},
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(txt)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return val, nil
}
