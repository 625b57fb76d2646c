package tui

// Deck is a pluggable dashboard deck.
type Deck interface {
	ID() string
	Title() string
	Render(ctx ViewContext, width, height int, active bool) string
	ContentLines(ctx ViewContext) int
}
