package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no prompt and returns the answer.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault()).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
