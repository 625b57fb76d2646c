package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding
	About     key.Binding

	// Navigation
	NextDeck key.Binding
	PrevDeck key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding

	// Actions
	ToggleMode key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),

		NextDeck: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev deck"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "prev tab"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle live/static"),
		),
	}
}
