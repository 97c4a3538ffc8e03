// Package view renders circuits, amplitude tables and measurement histograms
// as terminal text with lipgloss. It only reads from the quantum and grover
// packages and never mutates them.
package view

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW        = 11 // width of each moment column in characters
	labelVisualW = 7  // visual width of qubit label area
	gateNameW    = 5  // width of gate name inside box
	gateBoxW     = 7  // ┤ + gateNameW + ├ = 1 + 5 + 1
	barW         = 24 // widest probability or count bar
)

// Panel styles shared with the explorer.
var (
	CircuitPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	StatePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#73daca")).
			Padding(1)

	QASMPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(1)

	HelpPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	MenuPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff9e64")).
			Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff9e64"))

	Accent = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e0af68"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#565f89"))

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	Normal = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c0caf5"))

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f7768e"))
)

var (
	cursorBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff9e64")).
			Bold(true)

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	markedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))
)
