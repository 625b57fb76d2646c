package tui

import (
	"sync"
	"time"

	"github.com/clocklab/clocklab/internal/clock"
	"github.com/clocklab/clocklab/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget instance IDs keep messages from one widget out of another,
// including a re-mounted widget on the same page.
var (
	lastWidgetID int
	widgetIDMtx  sync.Mutex
)

func nextWidgetID() int {
	widgetIDMtx.Lock()
	defer widgetIDMtx.Unlock()
	lastWidgetID++
	return lastWidgetID
}

// InitializedMsg carries the timestamp captured by the widget's one-time
// initialization command.
type InitializedMsg struct {
	ID   int
	Text string
}

// ClockTickMsg is the periodic refresh signal for a live-mode widget.
// Gen tags the tick generation that armed it; a stale generation means
// the tick was cancelled (mode switch or teardown) while in flight.
type ClockTickMsg struct {
	ID  int
	Gen int
}

// ClockWidget owns the displayed timestamp and its refresh timer. The
// update mode is an input: the dashboard sets it, the widget never
// changes it on its own.
//
// Lifecycle: the widget is constructed empty, populates itself exactly
// once when the InitializedMsg from Init arrives, and from then on only
// replaces the timestamp on live-mode ticks. The first View call always
// renders the placeholder.
type ClockWidget struct {
	id       int
	mode     model.Mode
	state    model.DisplayState
	interval time.Duration
	source   clock.Source

	// gen is the current tick generation. Bumping it orphans any tick
	// already in flight; gen 0 means no tick has ever been armed.
	gen      int
	torndown bool
}

// NewClockWidget creates an uninitialized widget. No timer is armed
// until the initialization transition completes.
func NewClockWidget(mode model.Mode, interval time.Duration, source clock.Source) *ClockWidget {
	if interval <= 0 {
		interval = model.DefaultUpdateInterval
	}
	if source == nil {
		source = clock.SystemSource{}
	}
	return &ClockWidget{
		id:       nextWidgetID(),
		mode:     mode,
		interval: interval,
		source:   source,
	}
}

// Init returns the command that performs the one-time initialization.
// The timestamp is captured when the command runs, not when the widget
// is constructed, so the first render pass stays empty.
func (w *ClockWidget) Init() tea.Cmd {
	id := w.id
	source := w.source
	return func() tea.Msg {
		return InitializedMsg{ID: id, Text: clock.Format(source.Now())}
	}
}

// Update applies widget messages. Messages for other widget instances,
// stale tick generations, and duplicate initializations are ignored.
func (w *ClockWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case InitializedMsg:
		if msg.ID != w.id || w.state.Initialized || w.torndown {
			return nil
		}
		w.state = model.DisplayState{TimestampText: msg.Text, Initialized: true}
		if w.mode == model.ModeLive {
			return w.armTick()
		}
		return nil

	case ClockTickMsg:
		if msg.ID != w.id || msg.Gen != w.gen || w.torndown {
			return nil
		}
		if !w.state.Initialized || w.mode != model.ModeLive {
			return nil
		}
		w.state.TimestampText = clock.Format(w.source.Now())
		return w.tickCmd(w.gen)
	}

	return nil
}

// SetMode switches the update strategy. Switching away from live
// cancels the pending tick before returning; switching to live arms a
// fresh one, provided initialization has already happened.
func (w *ClockWidget) SetMode(mode model.Mode) tea.Cmd {
	if mode == w.mode || w.torndown {
		return nil
	}
	w.mode = mode

	if !w.state.Initialized {
		// Initialization arms the tick itself based on the mode then.
		return nil
	}
	if mode == model.ModeLive {
		return w.armTick()
	}
	w.gen++ // orphan the in-flight tick
	return nil
}

// Teardown releases the widget's timer. After it returns, no tick of
// any earlier generation is applied and nothing is re-armed.
func (w *ClockWidget) Teardown() {
	w.torndown = true
	w.gen++
}

// armTick starts a new tick generation.
func (w *ClockWidget) armTick() tea.Cmd {
	w.gen++
	return w.tickCmd(w.gen)
}

func (w *ClockWidget) tickCmd(gen int) tea.Cmd {
	id := w.id
	return tea.Tick(w.interval, func(time.Time) tea.Msg {
		return ClockTickMsg{ID: id, Gen: gen}
	})
}

// acceptsTick reports whether the widget would apply this tick message.
// Used by the dashboard to record cadence stats only for live ticks.
func (w *ClockWidget) acceptsTick(msg ClockTickMsg) bool {
	return msg.ID == w.id && msg.Gen == w.gen && !w.torndown &&
		w.state.Initialized && w.mode == model.ModeLive
}

// Mode returns the widget's current update strategy.
func (w *ClockWidget) Mode() model.Mode { return w.mode }

// State returns a copy of the widget's display state.
func (w *ClockWidget) State() model.DisplayState { return w.state }

// Interval returns the live-mode refresh cadence.
func (w *ClockWidget) Interval() time.Duration { return w.interval }
