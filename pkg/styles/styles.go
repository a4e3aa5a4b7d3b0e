// Package styles holds the lipgloss palette shared by console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors readable on light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#E67E22", Dark: "#FFB86C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#50FA7B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C7A89", Dark: "#6272A4"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Verbose = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
