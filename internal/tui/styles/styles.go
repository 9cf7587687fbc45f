// Package styles holds the shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#4A9EFF") // Blue accent
	secondaryColor = lipgloss.Color("#6C6C6C") // Gray for secondary text
	successColor   = lipgloss.Color("#73F59F") // Green for completed items
	errorColor     = lipgloss.Color("#FF6B6B") // Red for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// CompletedStyle for completed subtasks
	CompletedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// PhaseStyle for the phase selector in the detail view
	PhaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 2)

	// StatusBarStyle for the bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)
)
