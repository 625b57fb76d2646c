package model

// Mode selects the clock widget's update strategy. It is owned by the
// dashboard and passed to the widget as a read-only input.
type Mode int

const (
	// ModeStatic freezes the timestamp after the one-time initialization.
	ModeStatic Mode = iota
	// ModeLive refreshes the timestamp on a fixed cadence.
	ModeLive
)

// String returns the mode name used in config files and the status line.
func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	default:
		return "static"
	}
}

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == ModeLive {
		return ModeStatic
	}
	return ModeLive
}

// DisplayState is the clock widget's owned state.
//
// TimestampText is empty exactly until the widget has gone through its
// one-time initialization; the first rendered frame is always the
// placeholder, so a pre-activation and post-activation render of a fresh
// widget produce identical output.
type DisplayState struct {
	TimestampText string
	Initialized   bool
}

// Consistent reports whether the state honors the empty-iff-uninitialized
// invariant.
func (s DisplayState) Consistent() bool {
	return (s.TimestampText == "") == !s.Initialized
}
