package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/clocklab/clocklab/internal/model"
)

// scriptedSource replays a fixed sequence of times, repeating the last
// one once exhausted.
type scriptedSource struct {
	times []time.Time
	idx   int
}

func (s *scriptedSource) Now() time.Time {
	if s.idx >= len(s.times) {
		return s.times[len(s.times)-1]
	}
	t := s.times[s.idx]
	s.idx++
	return t
}

func secondsFrom(base time.Time, n int) []time.Time {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = base.Add(time.Duration(i) * time.Second)
	}
	return times
}

var testBase = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestFirstRenderIsPlaceholder(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 4)}
	w := NewClockWidget(model.ModeStatic, time.Second, src)

	state := w.State()
	if state.Initialized {
		t.Fatal("fresh widget reports initialized")
	}
	if state.TimestampText != "" {
		t.Fatalf("fresh widget has timestamp %q, want empty", state.TimestampText)
	}
	if !state.Consistent() {
		t.Fatal("fresh widget state violates empty-iff-uninitialized invariant")
	}

	// Two fresh widgets must render identical placeholders: the first
	// frame may not depend on when or where it is produced.
	other := NewClockWidget(model.ModeLive, time.Second, src)
	deckA := NewClockDeck(w)
	deckB := NewClockDeck(other)
	ctx := ViewContext{ContentWidth: 80, ContentHeight: 24}
	if a, b := deckA.Render(ctx, 60, 8, false), deckB.Render(ctx, 60, 8, false); a != b {
		t.Fatal("placeholder render differs between fresh widgets")
	}
}

func TestInitTransitionExactlyOnce(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 4)}
	w := NewClockWidget(model.ModeStatic, time.Second, src)

	msg, ok := w.Init()().(InitializedMsg)
	if !ok {
		t.Fatal("Init command did not produce an InitializedMsg")
	}

	cmd := w.Update(msg)
	if cmd != nil {
		t.Fatal("static-mode initialization armed a tick")
	}

	state := w.State()
	if !state.Initialized {
		t.Fatal("widget not initialized after InitializedMsg")
	}
	if _, err := time.Parse(time.RFC3339, state.TimestampText); err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", state.TimestampText, err)
	}
	if !state.Consistent() {
		t.Fatal("state violates invariant after initialization")
	}

	// A duplicate init message must not transition again.
	first := state.TimestampText
	if cmd := w.Update(InitializedMsg{ID: w.id, Text: "2030-01-01T00:00:00Z"}); cmd != nil {
		t.Fatal("duplicate initialization returned a command")
	}
	if got := w.State().TimestampText; got != first {
		t.Fatalf("duplicate initialization changed timestamp to %q", got)
	}
}

func TestInitArmsTickOnlyInLiveMode(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 4)}
	w := NewClockWidget(model.ModeLive, time.Second, src)

	if w.gen != 0 {
		t.Fatalf("tick generation = %d before initialization, want 0", w.gen)
	}

	cmd := w.Update(w.Init()().(InitializedMsg))
	if cmd == nil {
		t.Fatal("live-mode initialization did not arm a tick")
	}
	if w.gen == 0 {
		t.Fatal("tick generation not advanced by live-mode initialization")
	}
}

func TestLiveTicksAdvanceMonotonically(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	w := NewClockWidget(model.ModeLive, time.Second, src)
	w.Update(w.Init()().(InitializedMsg))

	prev, _ := time.Parse(time.RFC3339, w.State().TimestampText)
	for i := 0; i < 3; i++ {
		cmd := w.Update(ClockTickMsg{ID: w.id, Gen: w.gen})
		if cmd == nil {
			t.Fatalf("tick %d did not re-arm", i)
		}
		cur, err := time.Parse(time.RFC3339, w.State().TimestampText)
		if err != nil {
			t.Fatalf("tick %d produced invalid timestamp: %v", i, err)
		}
		if cur.Before(prev) {
			t.Fatalf("timestamp went backwards: %v then %v", prev, cur)
		}
		if cur.Equal(prev) {
			t.Fatalf("tick %d did not advance the timestamp", i)
		}
		prev = cur
	}
}

func TestStaticModeIgnoresTicks(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 4)}
	w := NewClockWidget(model.ModeStatic, time.Second, src)
	w.Update(w.Init()().(InitializedMsg))
	frozen := w.State().TimestampText

	if cmd := w.Update(ClockTickMsg{ID: w.id, Gen: w.gen}); cmd != nil {
		t.Fatal("static-mode tick returned a command")
	}
	if got := w.State().TimestampText; got != frozen {
		t.Fatalf("static-mode timestamp changed to %q", got)
	}
}

func TestModeSwitchCancelsInFlightTick(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	w := NewClockWidget(model.ModeLive, time.Second, src)
	w.Update(w.Init()().(InitializedMsg))

	oldGen := w.gen
	if cmd := w.SetMode(model.ModeStatic); cmd != nil {
		t.Fatal("switching to static returned a command")
	}
	frozen := w.State().TimestampText

	// The tick armed before the switch arrives late; it must be dropped.
	if cmd := w.Update(ClockTickMsg{ID: w.id, Gen: oldGen}); cmd != nil {
		t.Fatal("stale tick re-armed after mode switch")
	}
	if got := w.State().TimestampText; got != frozen {
		t.Fatalf("stale tick changed timestamp to %q", got)
	}
}

func TestSwitchBackToLiveArmsFreshGeneration(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	w := NewClockWidget(model.ModeLive, time.Second, src)
	w.Update(w.Init()().(InitializedMsg))

	w.SetMode(model.ModeStatic)
	staleGen := w.gen

	cmd := w.SetMode(model.ModeLive)
	if cmd == nil {
		t.Fatal("switching back to live did not arm a tick")
	}
	if w.gen == staleGen {
		t.Fatal("switching back to live reused the old generation")
	}
}

func TestModeSwitchBeforeInitDefersTick(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 4)}
	w := NewClockWidget(model.ModeStatic, time.Second, src)

	// Pre-initialization mode switches never arm a timer; only the
	// initialization transition may do that.
	if cmd := w.SetMode(model.ModeLive); cmd != nil {
		t.Fatal("pre-init mode switch armed a tick")
	}
	if cmd := w.Update(w.Init()().(InitializedMsg)); cmd == nil {
		t.Fatal("initialization did not arm a tick for the pending live mode")
	}
}

func TestTeardownDropsAllTicks(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	w := NewClockWidget(model.ModeLive, time.Second, src)
	w.Update(w.Init()().(InitializedMsg))
	activeGen := w.gen
	frozen := w.State().TimestampText

	w.Teardown()

	for _, gen := range []int{activeGen, w.gen, activeGen + 5} {
		if cmd := w.Update(ClockTickMsg{ID: w.id, Gen: gen}); cmd != nil {
			t.Fatalf("tick gen %d re-armed after teardown", gen)
		}
	}
	if got := w.State().TimestampText; got != frozen {
		t.Fatalf("timestamp changed after teardown: %q", got)
	}

	// A late initialization message is dropped too.
	fresh := NewClockWidget(model.ModeLive, time.Second, src)
	initMsg := fresh.Init()().(InitializedMsg)
	fresh.Teardown()
	if cmd := fresh.Update(initMsg); cmd != nil {
		t.Fatal("late init message armed a tick after teardown")
	}
	if fresh.State().Initialized {
		t.Fatal("widget initialized after teardown")
	}
}

func TestMessagesForOtherWidgetsIgnored(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	a := NewClockWidget(model.ModeLive, time.Second, src)
	b := NewClockWidget(model.ModeLive, time.Second, src)
	a.Update(a.Init()().(InitializedMsg))
	b.Update(b.Init()().(InitializedMsg))

	frozen := a.State().TimestampText
	if cmd := a.Update(ClockTickMsg{ID: b.id, Gen: b.gen}); cmd != nil {
		t.Fatal("widget accepted another widget's tick")
	}
	if got := a.State().TimestampText; got != frozen {
		t.Fatalf("another widget's tick changed timestamp to %q", got)
	}
}

// TestStaticLiveStaticScenario walks the full lifecycle: mount static,
// hydrate, go live, tick, and freeze again.
func TestStaticLiveStaticScenario(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{times: secondsFrom(testBase, 10)}
	w := NewClockWidget(model.ModeStatic, time.Second, src)
	deck := NewClockDeck(w)
	ctx := ViewContext{ContentWidth: 80, ContentHeight: 24}

	if out := deck.Render(ctx, 60, 8, false); strings.Contains(out, "2026") {
		t.Fatal("placeholder render leaked real content")
	}

	// Initialization: static view, fixed timestamp.
	w.Update(w.Init()().(InitializedMsg))
	out := deck.Render(ctx, 60, 8, false)
	if !strings.Contains(out, "STATIC") {
		t.Fatal("static view missing STATIC badge")
	}
	initial := w.State().TimestampText
	if !strings.Contains(out, initial) {
		t.Fatal("static view missing timestamp")
	}

	// Toggle to live: badge flips, next tick advances the timestamp.
	w.SetMode(model.ModeLive)
	if out := deck.Render(ctx, 60, 8, false); !strings.Contains(out, "LIVE") {
		t.Fatal("live view missing LIVE badge")
	}
	w.Update(ClockTickMsg{ID: w.id, Gen: w.gen})
	updated := w.State().TimestampText
	if updated == initial {
		t.Fatal("live tick did not advance the timestamp")
	}

	// Toggle back: badge reverts, timestamp frozen at the latest value.
	w.SetMode(model.ModeStatic)
	out = deck.Render(ctx, 60, 8, false)
	if !strings.Contains(out, "STATIC") {
		t.Fatal("view did not revert to STATIC badge")
	}
	if got := w.State().TimestampText; got != updated {
		t.Fatalf("timestamp moved after reverting to static: %q", got)
	}
}
