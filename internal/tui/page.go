package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (clock dashboard, about).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}

// TeardownPage is implemented by pages that hold timers or other
// resources that must be released when the page is navigated away from.
type TeardownPage interface {
	Teardown()
}
