package prompt

import "github.com/manifoldco/promptui"

// Password prompts for a masked password. Surrounding spaces are kept; only
// an all-blank answer is rejected.
func Password(label string) (string, error) {
	return run(promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: notBlank("password"),
	})
}
