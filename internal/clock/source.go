// Package clock provides the wall-clock capability consumed by the TUI.
// The clock widget never reads time.Now directly; it goes through a
// Source so tests can script the observed times.
package clock

import "time"

// Source yields the current wall-clock time.
type Source interface {
	Now() time.Time
}

// SystemSource reads the operating system clock.
type SystemSource struct{}

// Now returns the current system time.
func (SystemSource) Now() time.Time { return time.Now() }

// Format renders t as an ISO-8601 (RFC 3339) string.
func Format(t time.Time) string {
	return t.Format(time.RFC3339)
}
