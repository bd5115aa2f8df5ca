package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for all TUI colors.
var (
	duskBlue    = lipgloss.Color("#7AA2F7") // primary accent
	sunsetGold  = lipgloss.Color("#E0AF68") // waypoint / route highlights
	leafGreen   = lipgloss.Color("#9ECE6A") // success states
	emberRed    = lipgloss.Color("#F7768E") // errors, recording indicator
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

// Common Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(duskBlue).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	waypointStyle = lipgloss.NewStyle().
			Foreground(sunsetGold).
			Bold(true)

	entryTimeStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	entryBodyStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	selectedStyle = lipgloss.NewStyle().
			Foreground(duskBlue).
			Bold(true)

	recordingStyle = lipgloss.NewStyle().
			Foreground(emberRed).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	toastStyle = lipgloss.NewStyle().
			Foreground(leafGreen)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(emberRed)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(duskBlue)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(duskBlue).
			Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(sunsetGold).
			Padding(1, 2)

	docTitleStyle = lipgloss.NewStyle().
			Foreground(sunsetGold).
			Bold(true)

	docLinkStyle = lipgloss.NewStyle().
			Foreground(duskBlue).
			Underline(true)
)
