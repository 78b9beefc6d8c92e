package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question. An empty answer takes defaultYes.
// Ctrl+C returns ErrAborted.
func Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	if !Interactive() {
		return false, ErrNotInteractive
	}
	p := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, hint),
		IsConfirm: true,
	}
	result, err := p.Run()
	return answer(result, err, defaultYes)
}

// answer interprets the outcome of a confirm prompt. promptui reports "n"
// and an empty line both as an abort; only Ctrl+C is a real one.
func answer(result string, err error, defaultYes bool) (bool, error) {
	switch {
	case err == nil:
	case errors.Is(err, promptui.ErrInterrupt):
		return false, ErrAborted
	case errors.Is(err, promptui.ErrAbort):
		if strings.TrimSpace(result) == "" {
			return defaultYes, nil
		}
		return false, nil
	default:
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(result)) {
	case "y", "yes":
		return true, nil
	case "":
		return defaultYes, nil
	default:
		return false, nil
	}
}

// ConfirmWithForce returns true immediately if force is true,
// otherwise prompts for confirmation.
func ConfirmWithForce(label string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	return Confirm(label, false)
}
