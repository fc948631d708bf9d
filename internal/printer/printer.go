package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// detectedProfile is the color profile lipgloss picked at startup.
var detectedProfile = lipgloss.ColorProfile()

// SetNoColor disables ANSI styling when true and restores the detected
// profile when false. The NO_COLOR environment variable forces it on.
func SetNoColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(detectedProfile)
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Step renders one diagnostic line: a check or cross mark, a bold name and
// an optional faint detail.
func Step(ok bool, name, detail string) string {
	mark := Success("✓")
	if !ok {
		mark = Error("✗")
	}
	line := fmt.Sprintf("%s %s", mark, Bold(name))
	if detail != "" {
		line += " " + Faint(detail)
	}
	return line
}

// PrintSuccess prints text with success styling to stdout.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// FprintError writes err in error styling to w.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(w, Error(fmt.Sprintf("Error: %v", err)))
}

// FprintHint writes a hint message followed by a bulleted suggestion list to w.
func FprintHint(w io.Writer, message string, suggestions []string) {
	if message == "" {
		return
	}
	_, _ = fmt.Fprintln(w, Info(message))
	if len(suggestions) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, Faint("Suggestions:"))
	for _, s := range suggestions {
		_, _ = fmt.Fprintf(w, "  - %s\n", s)
	}
}
