package tui

import "github.com/charmbracelet/lipgloss"

// Palette colors. Set from the active skin by InitializeSkin; the
// defaults below are the built-in skin.
var (
	ColorNavy   = lipgloss.Color("#0A1931")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("#808080")
	ColorBlue   = lipgloss.Color("#4A90D9")
	ColorGreen  = lipgloss.Color("#44FF44")
	ColorOrange = lipgloss.Color("#FFAA00")
	ColorRed    = lipgloss.Color("#FF4444")
)

// Shared styles derived from the palette. Rebuilt whenever the skin changes.
var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	deckTitleStyle     lipgloss.Style
	helpStyle          lipgloss.Style
	liveBadgeStyle     lipgloss.Style
	staticBadgeStyle   lipgloss.Style
	timestampStyle     lipgloss.Style
	skeletonStyle      lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives the shared styles from the current palette.
func rebuildStyles() {
	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)

	activeSectionStyle = sectionStyle.
		BorderForeground(ColorBlue)

	deckTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray)

	liveBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorNavy).
		Background(ColorGreen).
		Bold(true).
		Padding(0, 1)

	staticBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorGray).
		Padding(0, 1)

	timestampStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true)

	skeletonStyle = lipgloss.NewStyle().
		Foreground(ColorGray)
}
