package tui

import "github.com/clocklab/clocklab/internal/model"

// ViewContext provides read-only context to decks for rendering,
// replacing direct access to *DashboardModel.
type ViewContext struct {
	ContentWidth  int
	ContentHeight int
	Mode          model.Mode
	Debug         bool
}
