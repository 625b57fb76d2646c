package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal is a scrollable overlay listing key bindings.
type HelpModal struct {
	vp   viewport.Model
	keys KeyMap
}

// NewHelpModal creates the help modal.
func NewHelpModal(keys KeyMap) *HelpModal {
	return &HelpModal{
		vp:   viewport.New(0, 0),
		keys: keys,
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit), key.Matches(msg, h.keys.Help):
			return true, nil
		}
		var cmd tea.Cmd
		h.vp, cmd = h.vp.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		h.vp, cmd = h.vp.Update(msg)
		return false, cmd
	}

	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := modalWidth - 4   // Modal borders
	contentHeight := modalHeight - 4 // Header + status

	h.vp.Width = contentWidth
	h.vp.Height = contentHeight
	h.vp.SetContent(h.content())

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(h.vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help & Documentation")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/h: Toggle Help | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func (h *HelpModal) content() string {
	bindings := []struct {
		binding key.Binding
		desc    string
	}{
		{h.keys.ToggleMode, "Toggle between live and static updates"},
		{h.keys.NextDeck, "Focus next deck"},
		{h.keys.PrevDeck, "Focus previous deck"},
		{h.keys.NextTab, "Next info tab"},
		{h.keys.PrevTab, "Previous info tab"},
		{h.keys.About, "About page"},
		{h.keys.Help, "Toggle this help"},
		{h.keys.Escape, "Close modal"},
		{h.keys.Quit, "Quit"},
		{h.keys.ForceQuit, "Force quit"},
	}

	var b strings.Builder
	b.WriteString("Clocklab Dashboard Help\n\n")
	b.WriteString("The clock widget starts as a placeholder, fills in once on\n")
	b.WriteString("activation, then refreshes every second in live mode or stays\n")
	b.WriteString("frozen in static mode.\n\nKEYS:\n")
	for _, entry := range bindings {
		help := entry.binding.Help()
		b.WriteString(fmt.Sprintf("  %-12s - %s\n", help.Key, entry.desc))
	}
	return b.String()
}
