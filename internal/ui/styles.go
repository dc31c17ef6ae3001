// Package ui holds the console's shared lipgloss styles and output helpers.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorAccent  = lipgloss.Color("#04D9FF") // Neon Cyan
	ColorSuccess = lipgloss.Color("#00FF94") // Neon Green
	ColorError   = lipgloss.Color("#FF0055") // Neon Red
	ColorWarning = lipgloss.Color("#FFD700") // Gold
	ColorMuted   = lipgloss.Color("#565f89") // Muted Blue
	ColorText    = lipgloss.Color("#c0caf5") // Light Blue/White
	ColorSubtle  = lipgloss.Color("#24283b") // Dark Blue

	AccentStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	TitleStyle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	BoldAccent   = AccentStyle.Bold(true)
)

// DisableColor forces plain ASCII output for every lipgloss style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
