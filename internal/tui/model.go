package tui

import (
	"time"

	"github.com/clocklab/clocklab/internal/clock"
	"github.com/clocklab/clocklab/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel is the main TUI model. It is the mode controller: it
// owns the selected Mode and hands it to the clock widget, which owns
// its own timestamp state and timer.
type DashboardModel struct {
	keys KeyMap

	// Window dimensions
	width  int
	height int

	// Mode selection (the controller's only state besides the tabs).
	mode model.Mode

	widget   *ClockWidget
	stats    *TickStats
	infoTabs *InfoTabsDeck
	decks    []Deck

	activeDeckIdx int
	modalStack    []Modal

	// Pending page navigation, consumed by DashboardPage.
	nav *PageNav

	// Configuration
	updateInterval time.Duration
	debug          bool
	source         clock.Source
}

// NewDashboardModel creates the dashboard with an unmounted clock widget.
func NewDashboardModel(mode model.Mode, updateInterval time.Duration, debug bool, source clock.Source) *DashboardModel {
	if updateInterval <= 0 {
		updateInterval = model.DefaultUpdateInterval
	}
	if source == nil {
		source = clock.SystemSource{}
	}

	m := &DashboardModel{
		keys:           DefaultKeyMap(),
		mode:           mode,
		stats:          NewTickStats(source.Now()),
		infoTabs:       NewInfoTabsDeck(),
		updateInterval: updateInterval,
		debug:          debug,
		source:         source,
	}
	m.mountWidget()
	return m
}

// mountWidget creates a fresh clock widget and rebuilds the deck list
// around it. Called on construction and when the page is re-entered
// after a teardown.
func (m *DashboardModel) mountWidget() {
	m.widget = NewClockWidget(m.mode, m.updateInterval, m.source)
	m.decks = []Deck{
		NewClockDeck(m.widget),
		NewTickHistoryDeck(m.stats),
		m.infoTabs,
	}
	if m.activeDeckIdx >= len(m.decks) {
		m.activeDeckIdx = 0
	}
}

// Init initializes the model. The widget's init command performs the
// one-time state transition; nothing else is armed up front.
func (m *DashboardModel) Init() tea.Cmd {
	var cmds []tea.Cmd

	// Enable mouse support
	cmds = append(cmds, func() tea.Msg { return tea.EnableMouseCellMotion() })

	if m.widget.torndown {
		m.mountWidget()
	}
	cmds = append(cmds, m.widget.Init())

	return tea.Batch(cmds...)
}

// Teardown cancels the widget's timer when the page is left.
func (m *DashboardModel) Teardown() {
	m.widget.Teardown()
}

// Mode returns the currently selected update strategy.
func (m *DashboardModel) Mode() model.Mode { return m.mode }

// toggleMode flips the update strategy and pushes it into the widget.
func (m *DashboardModel) toggleMode() tea.Cmd {
	m.mode = m.mode.Toggled()
	return m.widget.SetMode(m.mode)
}

// viewContext builds a ViewContext snapshot for deck rendering.
func (m *DashboardModel) viewContext() ViewContext {
	return ViewContext{
		ContentWidth:  m.width,
		ContentHeight: m.height,
		Mode:          m.mode,
		Debug:         m.debug,
	}
}

// takeNav returns and clears any pending page navigation.
func (m *DashboardModel) takeNav() *PageNav {
	nav := m.nav
	m.nav = nil
	return nav
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *DashboardModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// DashboardPage adapts DashboardModel to the Page interface.
type DashboardPage struct {
	Model *DashboardModel
}

// NewDashboardPage wraps a DashboardModel as a Page.
func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{Model: m}
}

func (p *DashboardPage) ID() string { return "clock" }

func (p *DashboardPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, p.Model.takeNav()
}

func (p *DashboardPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}

// Teardown releases the clock widget's timer on page exit.
func (p *DashboardPage) Teardown() {
	p.Model.Teardown()
}
