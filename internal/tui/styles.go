package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Skins may override these at startup (see skin.go); the TUI
// reads them per render, so overrides apply everywhere at once.
var (
	ColorNavy   = lipgloss.Color("#1a1b3a")
	ColorWhite  = lipgloss.Color("#e6edf3")
	ColorGray   = lipgloss.Color("#8b949e")
	ColorAccent = lipgloss.Color("#58a6ff")
	ColorGreen  = lipgloss.Color("#3fb950")
	ColorYellow = lipgloss.Color("#d29922")
	ColorRed    = lipgloss.Color("#f85149")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorNavy)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Underline(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(lipgloss.Color("#2d3250")).
				Bold(true)

	outdatedTagStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	loadingStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	successStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorNavy)

	modalBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(1, 2)

	chartTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)
)
