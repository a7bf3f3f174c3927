package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan, primary accent
	colorAccent  = lipgloss.Color("#FFD700") // Gold, free points and reveal
	colorSuccess = lipgloss.Color("#00E676") // Green, correct answers
	colorDanger  = lipgloss.Color("#FF5252") // Red, game over and errors
	colorMuted   = lipgloss.Color("#636363") // Gray, help and hints
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white, primary text
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorWhite).
			Padding(0, 1)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleFreePoint = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleGameOver = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleReveal = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleScore = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)
)
