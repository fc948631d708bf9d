package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Spin runs fn while a spinner titled title is shown, then returns fn's error.
// Outside an interactive terminal fn runs directly.
func Spin(ctx context.Context, title string, fn func() error) error {
	if !IsInteractive() {
		return fn()
	}

	var fnErr error
	err := spinner.New().
		Context(ctx).
		Title(title).
		TitleStyle(currentThemeOrDefault().Focused.Title.UnsetBold()).
		Style(lipgloss.NewStyle().Foreground(lipgloss.Color("3"))).
		Action(func() { fnErr = fn() }).
		Run()
	if err != nil {
		return err
	}
	return fnErr
}
