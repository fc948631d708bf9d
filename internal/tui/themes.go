package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// themeBuilders maps each selectable theme name to its constructor.
var themeBuilders = map[string]func() *huh.Theme{
	"brewstamp": brewstampTheme,
	"base":      huh.ThemeBase,
	"charm":     huh.ThemeCharm,
	"dracula":   huh.ThemeDracula,
}

// ValidThemes lists the theme names accepted in config, brewstamp first.
var ValidThemes = []string{"brewstamp", "base", "charm", "dracula"}

// IsValidTheme reports whether name selects a known theme.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	build, ok := themeBuilders[name]
	if !ok {
		return nil
	}
	return build()
}
