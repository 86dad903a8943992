package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmAction shows a yes/no confirmation prompt and returns the user's
// choice. Returns an error when no TTY is available, so non-interactive
// callers fail loudly instead of hanging.
func ConfirmAction(title, affirmative, negative string) (bool, error) {
	if !IsTTY() {
		return false, fmt.Errorf("cannot prompt for confirmation: not a TTY")
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative(negative).
				Value(&confirmed),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}

// PromptInput shows a single-line text input prompt and returns the entered
// value.
func PromptInput(title, description, placeholder string) (string, error) {
	return PromptInputWithValidation(title, description, placeholder, nil)
}

// PromptInputWithValidation shows a single-line text input prompt with a
// custom validator. A nil validator accepts any input.
func PromptInputWithValidation(title, description, placeholder string, validate func(string) error) (string, error) {
	if !IsTTY() {
		return "", fmt.Errorf("cannot prompt for input: not a TTY")
	}

	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder)
	if validate != nil {
		input = input.Validate(validate)
	}

	var value string
	input = input.Value(&value)

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("input prompt failed: %w", err)
	}
	return value, nil
}
