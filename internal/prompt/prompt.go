package prompt

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is wrapped by every NoopPrompter error.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// Prompter asks the user for the values a command could not get from flags.
type Prompter interface {
	Select(title string, options []string) (string, error)
	Input(title string, defaultValue string) (string, error)
	Confirm(title string, defaultValue bool) (bool, error)

	// SelectColors lets the user pick a subset of color specs. The result
	// keeps the order of colors, not the order of selection.
	SelectColors(title string, colors []string) ([]string, error)
}

// NoopPrompter backs -I mode. Each prompt fails with an error naming the
// question so the user knows which flag to supply instead.
type NoopPrompter struct{}

func refuse(title string) error {
	return fmt.Errorf("%w: %q", ErrNonInteractive, title)
}

func (NoopPrompter) Select(title string, _ []string) (string, error) { return "", refuse(title) }

func (NoopPrompter) Input(title string, _ string) (string, error) { return "", refuse(title) }

func (NoopPrompter) Confirm(title string, _ bool) (bool, error) { return false, refuse(title) }

func (NoopPrompter) SelectColors(title string, _ []string) ([]string, error) {
	return nil, refuse(title)
}
