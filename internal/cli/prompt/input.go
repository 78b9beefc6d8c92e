// Package prompt asks for connection details and confirmations on the
// terminal. Every prompt fails with ErrNotInteractive when stdin is not a
// terminal, so scripted runs never block.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

var (
	// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
	ErrAborted = errors.New("aborted")
	// ErrNotInteractive is returned when a prompt is needed but stdin is
	// not a terminal.
	ErrNotInteractive = errors.New("input required but stdin is not a terminal")
)

// Interactive reports whether prompts can be shown. Tests replace it.
var Interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsAborted returns true if the error indicates the user aborted (Ctrl+C).
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

func run(p promptui.Prompt) (string, error) {
	if !Interactive() {
		return "", ErrNotInteractive
	}
	result, err := p.Run()
	return result, wrapError(err)
}

// notBlank rejects input that is empty after trimming spaces.
func notBlank(what string) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s required", what)
		}
		return nil
	}
}

// InputRequired prompts for a non-blank value such as a username. The
// answer is returned trimmed.
func InputRequired(label string) (string, error) {
	v, err := run(promptui.Prompt{
		Label:    label,
		Validate: notBlank(strings.ToLower(label)),
	})
	return strings.TrimSpace(v), err
}
