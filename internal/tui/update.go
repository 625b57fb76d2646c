package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case InitializedMsg:
		wasInitialized := m.widget.State().Initialized
		cmd := m.widget.Update(msg)
		if !wasInitialized && m.widget.State().Initialized {
			m.stats.Record(m.source.Now())
		}
		return m, cmd

	case ClockTickMsg:
		if m.widget.acceptsTick(msg) {
			m.stats.Record(m.source.Now())
		}
		return m, m.widget.Update(msg)
	}

	return m, nil
}

// handleKeyPress dispatches key events: modal stack first, then global
// dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m.keys))
		return m, nil

	case key.Matches(msg, k.About):
		m.nav = &PageNav{PageID: "about"}
		return m, nil

	case key.Matches(msg, k.ToggleMode):
		return m, m.toggleMode()

	case key.Matches(msg, k.NextDeck):
		m.activeDeckIdx = (m.activeDeckIdx + 1) % len(m.decks)
		return m, nil

	case key.Matches(msg, k.PrevDeck):
		m.activeDeckIdx = (m.activeDeckIdx - 1 + len(m.decks)) % len(m.decks)
		return m, nil

	case key.Matches(msg, k.NextTab):
		m.infoTabs.Next()
		return m, nil

	case key.Matches(msg, k.PrevTab):
		m.infoTabs.Prev()
		return m, nil
	}

	return m, nil
}

// handleMouseEvent processes mouse interactions
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handleMouseClick(msg.X, msg.Y)

		case tea.MouseButtonWheelUp:
			m.infoTabs.Prev()
			return m, nil

		case tea.MouseButtonWheelDown:
			m.infoTabs.Next()
			return m, nil
		}
	}

	return m, nil
}

// handleMouseClick maps clicks to decks: clicking the clock deck
// toggles the mode, clicking another deck focuses it.
func (m *DashboardModel) handleMouseClick(_, y int) (tea.Model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}

	idx, ok := m.deckAtRow(y)
	if !ok {
		return m, nil
	}

	m.activeDeckIdx = idx
	if m.decks[idx].ID() == "clock" {
		return m, m.toggleMode()
	}
	return m, nil
}

// deckAtRow resolves a screen row to a deck index using the same
// heights the renderer uses.
func (m *DashboardModel) deckAtRow(y int) (int, bool) {
	ctx := m.viewContext()
	row := brandingHeight
	for i, deck := range m.decks {
		h := deck.ContentLines(ctx) + deckFrameLines
		if y >= row && y < row+h {
			return i, true
		}
		row += h
	}
	return 0, false
}
