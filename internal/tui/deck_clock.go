package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/clocklab/clocklab/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// ClockDeck renders the clock widget as a dashboard deck.
type ClockDeck struct {
	widget *ClockWidget
}

// NewClockDeck wraps a clock widget.
func NewClockDeck(widget *ClockWidget) *ClockDeck {
	return &ClockDeck{widget: widget}
}

func (d *ClockDeck) ID() string    { return "clock" }
func (d *ClockDeck) Title() string { return "Clock" }

func (d *ClockDeck) ContentLines(_ ViewContext) int { return 5 }

func (d *ClockDeck) Render(ctx ViewContext, width, height int, active bool) string {
	style := sectionStyle.Width(width).Height(height)
	if active {
		style = activeSectionStyle.Width(width).Height(height)
	}

	title := deckTitleStyle.Render("Current Time")

	contentLines := height - 3
	if contentLines < 3 {
		contentLines = 3
	}

	var content string
	if d.widget.State().Initialized {
		content = d.renderContent(ctx, width-2, contentLines)
	} else {
		content = renderClockPlaceholder(width-2, contentLines)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (d *ClockDeck) renderContent(ctx ViewContext, width, height int) string {
	state := d.widget.State()

	timestamp := timestampStyle.Render(state.TimestampText)
	badge := d.renderBadge()

	lines := []string{timestamp, "", badge}
	if ctx.Debug {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("interval=%s mode=%s", d.widget.Interval(), d.widget.Mode())))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// renderBadge shows the update strategy: a pulsing LIVE badge or a gray
// STATIC one.
func (d *ClockDeck) renderBadge() string {
	if d.widget.Mode() == model.ModeLive {
		// Alternate the dot with wall-clock time so it pulses on refresh.
		dot := "●"
		if time.Now().UnixMilli()/500%2 == 0 {
			dot = "○"
		}
		return liveBadgeStyle.Render(dot + " LIVE")
	}
	return staticBadgeStyle.Render("■ STATIC")
}

// renderClockPlaceholder renders the pre-initialization skeleton. It is
// shaped like the real content (timestamp line, spacer, badge line) so
// the layout does not shift when the first timestamp arrives.
func renderClockPlaceholder(width, height int) string {
	skeleton := skeletonStyle.Render(strings.Repeat("·", len("2006-01-02T15:04:05Z07:00")))
	badge := staticBadgeStyle.Render("  ····  ")

	block := lipgloss.JoinVertical(lipgloss.Center, skeleton, "", badge)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
