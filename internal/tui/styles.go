package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every page.
var (
	ColorNavy   = lipgloss.Color("#1B2333")
	ColorBlue   = lipgloss.Color("#4FA3FF")
	ColorGray   = lipgloss.Color("#7A8599")
	ColorGreen  = lipgloss.Color("#49E209")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorYellow = lipgloss.Color("#FFD75F")
	ColorOrange = lipgloss.Color("#FFAA00")
	ColorWhite  = lipgloss.Color("#F5F7FA")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(10)

	focusedLabelStyle = labelStyle.
				Foreground(ColorGreen).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(ColorNavy).
				Background(ColorBlue).
				Bold(true).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(1, 2)
)
