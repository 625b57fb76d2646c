package model

import "time"

// Shared defaults used by the CLI binary and the TUI.
const (
	DefaultUpdateInterval = 1 * time.Second
	DefaultSkin           = "default"
	DefaultMode           = ModeStatic
)
