package tui

import "time"

// tickHistoryWindow bounds the sliding window of observed intervals.
const tickHistoryWindow = 60

// TickStats tracks the observed refresh cadence of the clock widget.
// One entry is recorded per applied tick; the window feeds the tick
// history deck and the debug sub-text.
type TickStats struct {
	StartTime       time.Time
	TickCount       int
	LastTickAt      time.Time
	RecentIntervals []time.Duration
}

// NewTickStats starts tracking from now.
func NewTickStats(now time.Time) *TickStats {
	return &TickStats{
		StartTime:       now,
		RecentIntervals: make([]time.Duration, 0, tickHistoryWindow),
	}
}

// Record registers one applied tick at the given time.
func (s *TickStats) Record(now time.Time) {
	if !s.LastTickAt.IsZero() {
		interval := now.Sub(s.LastTickAt)
		if interval < 0 {
			interval = 0
		}
		s.RecentIntervals = append(s.RecentIntervals, interval)
		if len(s.RecentIntervals) > tickHistoryWindow {
			s.RecentIntervals = s.RecentIntervals[1:]
		}
	}
	s.TickCount++
	s.LastTickAt = now
}

// Uptime returns how long stats have been tracked.
func (s *TickStats) Uptime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// LastInterval returns the most recent observed interval, or zero when
// fewer than two ticks have been applied.
func (s *TickStats) LastInterval() time.Duration {
	if len(s.RecentIntervals) == 0 {
		return 0
	}
	return s.RecentIntervals[len(s.RecentIntervals)-1]
}
