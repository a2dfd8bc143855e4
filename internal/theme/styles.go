package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(13)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PersonaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Time bucket styles
var (
	DistractionStyle = lipgloss.NewStyle().
				Foreground(ColorDistraction)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	WorkStyle = lipgloss.NewStyle().
			Foreground(ColorWork)
)

// NudgeStyle frames the latest nudge message
var NudgeStyle = lipgloss.NewStyle().
	Foreground(ColorNudge).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorNudge).
	Padding(0, 1)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
