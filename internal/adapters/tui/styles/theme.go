package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Muted   = lipgloss.Color("#6B7280") // Gray
	Error   = lipgloss.Color("#EF4444") // Red
	White   = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Label = lipgloss.NewStyle().
		Foreground(Muted)

	LabelFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Status = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			MarginTop(1)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)
)
