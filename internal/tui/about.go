package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AboutPage is a static page describing the project. Navigating here
// tears down the clock page, so returning re-runs the widget's full
// mount lifecycle.
type AboutPage struct {
	keys KeyMap
}

// NewAboutPage creates the about page.
func NewAboutPage(keys KeyMap) *AboutPage {
	return &AboutPage{keys: keys}
}

func (p *AboutPage) ID() string { return "about" }

func (p *AboutPage) Init() tea.Cmd { return nil }

func (p *AboutPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.keys.ForceQuit), key.Matches(keyMsg, p.keys.Quit):
			return tea.Quit, nil
		case key.Matches(keyMsg, p.keys.Escape), key.Matches(keyMsg, p.keys.About):
			return nil, &PageNav{PageID: "clock"}
		}
	}
	return nil, nil
}

func (p *AboutPage) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBlue).
		Render("About Clocklab")

	body := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Width(min(60, width-4)).
		Render("Clocklab demonstrates a deterministic render lifecycle: a " +
			"clock widget that paints a layout-stable placeholder first, " +
			"fills itself in exactly once on activation, and then either " +
			"freezes or refreshes every second depending on the selected " +
			"mode. Leaving this page and returning re-mounts the widget " +
			"from scratch.")

	hint := helpStyle.Render("esc: back • q: quit")

	block := lipgloss.JoinVertical(lipgloss.Center, heading, "", body, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
