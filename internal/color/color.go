package color

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// WarningStyle renders non-fatal diagnostics.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD75F"})

	// ErrorStyle renders fatal errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5F5F"}).
			Bold(true)
)

// Initialize tells lipgloss which background the terminal uses, so adaptive
// colors pick the readable variant.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Warning renders msg prefixed with "Warning: ".
func Warning(msg string) string {
	return WarningStyle.Render("Warning: " + msg)
}

// Error renders msg prefixed with "Error: ".
func Error(msg string) string {
	return ErrorStyle.Render("Error: " + msg)
}
