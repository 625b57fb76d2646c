package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is an overlay rendered on top of the dashboard. Update returns
// true when the modal wants to be popped off the stack.
type Modal interface {
	ID() string
	Update(msg tea.Msg) (bool, tea.Cmd)
	View(width, height int) string
}
