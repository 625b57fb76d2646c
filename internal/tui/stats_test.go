package tui

import (
	"testing"
	"time"
)

func TestTickStatsRecordsIntervals(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	s := NewTickStats(base)

	if got := s.LastInterval(); got != 0 {
		t.Fatalf("LastInterval before any tick = %v, want 0", got)
	}

	s.Record(base)
	if got := len(s.RecentIntervals); got != 0 {
		t.Fatalf("first tick produced %d intervals, want 0", got)
	}

	s.Record(base.Add(time.Second))
	s.Record(base.Add(2500 * time.Millisecond))

	if got := s.TickCount; got != 3 {
		t.Fatalf("tick count = %d, want 3", got)
	}
	if got := len(s.RecentIntervals); got != 2 {
		t.Fatalf("interval count = %d, want 2", got)
	}
	if got := s.LastInterval(); got != 1500*time.Millisecond {
		t.Fatalf("LastInterval = %v, want 1.5s", got)
	}
	if got := s.Uptime(base.Add(5 * time.Second)); got != 5*time.Second {
		t.Fatalf("Uptime = %v, want 5s", got)
	}
}

func TestTickStatsWindowBounded(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	s := NewTickStats(base)

	for i := 0; i < tickHistoryWindow*2; i++ {
		s.Record(base.Add(time.Duration(i) * time.Second))
	}

	if got := len(s.RecentIntervals); got != tickHistoryWindow {
		t.Fatalf("window size = %d, want %d", got, tickHistoryWindow)
	}
}

func TestTickStatsClampsBackwardClock(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	s := NewTickStats(base)

	s.Record(base.Add(time.Second))
	s.Record(base) // clock stepped backwards

	if got := s.LastInterval(); got != 0 {
		t.Fatalf("backward interval = %v, want clamped to 0", got)
	}
}
