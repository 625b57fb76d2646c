package tui

import (
	"fmt"
	"strings"

	"github.com/clocklab/clocklab/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	brandingHeight = 1
	// Rows a deck occupies on screen beyond its ContentLines: title,
	// inner spacing, and the rounded border.
	deckFrameLines = 5
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.renderDashboard()
}

// renderDashboard renders the main dashboard layout
func (m *DashboardModel) renderDashboard() string {
	// Ensure minimum dimensions
	if m.height < 20 || m.width < 60 {
		return "Terminal too small. Resize to at least 60x20."
	}

	ctx := m.viewContext()

	sections := []string{m.renderBranding()}
	for i, deck := range m.decks {
		h := deck.ContentLines(ctx) + 3
		sections = append(sections, deck.Render(ctx, m.width-2, h, i == m.activeDeckIdx))
	}

	mainContent := lipgloss.JoinVertical(lipgloss.Left, sections...)
	statusLine := m.renderStatusLine()

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusLine)
}

// renderBranding renders "Clocklab" with a blue to green gradient.
func (m *DashboardModel) renderBranding() string {
	colors := []string{
		"#4A90D9", // C
		"#40A0C4", // l
		"#36B0AF", // o
		"#2CC09A", // c
		"#22D085", // k
		"#18E070", // l
		"#0EE85B", // a
		"#04F046", // b
	}

	chars := []string{"C", "l", "o", "c", "k", "l", "a", "b"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}

	return result
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := m.width
	narrow := w < 80
	medium := w < 120

	// Left section: active deck.
	var leftText string
	if m.activeDeckIdx < len(m.decks) {
		leftText = fmt.Sprintf("[%s]", m.decks[m.activeDeckIdx].Title())
	}

	// Center section: contextual key hints.
	var statusText string
	if m.HasModal() {
		statusText = "ESC: Close"
	} else if narrow {
		statusText = "Space: Toggle • ?: Help • q: Quit"
	} else if medium {
		statusText = "Space: Toggle Mode • ←→: Info Tabs • Tab: Focus • ?: Help • q: Quit"
	} else {
		statusText = "Space: Toggle Live/Static • ←/→: Switch Info Tab • Tab: Focus Deck • a: About • ?: Help • q: Quit"
	}

	// Right section: mode indicator and cadence.
	rightText := m.renderModeIndicator(narrow)

	gap1 := w/2 - lipgloss.Width(leftText) - lipgloss.Width(statusText)/2
	if gap1 < 1 {
		gap1 = 1
	}
	line := leftText + strings.Repeat(" ", gap1) + statusText
	gap2 := w - lipgloss.Width(line) - lipgloss.Width(rightText)
	if gap2 < 1 {
		gap2 = 1
	}
	line += strings.Repeat(" ", gap2) + rightText

	return baseStyle.Width(w).Render(line)
}

// renderModeIndicator shows the mode as a colored dot plus the cadence.
func (m *DashboardModel) renderModeIndicator(narrow bool) string {
	var dot string
	if m.mode == model.ModeLive {
		dot = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorGreen).Render("●")
	} else {
		dot = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorGray).Render("●")
	}

	if narrow {
		return fmt.Sprintf("%s %s", dot, m.mode)
	}
	return fmt.Sprintf("%s %s @ %s", dot, m.mode, m.updateInterval)
}
