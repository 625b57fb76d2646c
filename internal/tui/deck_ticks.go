package tui

import (
	"fmt"
	"strings"

	"github.com/clocklab/clocklab/internal/model"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// TickHistoryDeck charts the observed refresh intervals of the clock
// widget, one bar per applied tick.
type TickHistoryDeck struct {
	stats *TickStats
}

// NewTickHistoryDeck creates a tick history deck over the shared stats.
func NewTickHistoryDeck(stats *TickStats) *TickHistoryDeck {
	return &TickHistoryDeck{stats: stats}
}

func (d *TickHistoryDeck) ID() string    { return "ticks" }
func (d *TickHistoryDeck) Title() string { return "Tick History" }

func (d *TickHistoryDeck) ContentLines(ctx ViewContext) int {
	if ctx.ContentWidth < 80 {
		return 6
	}
	return 8
}

func (d *TickHistoryDeck) Render(ctx ViewContext, width, height int, active bool) string {
	style := sectionStyle.Width(width).Height(height)
	if active {
		style = activeSectionStyle.Width(width).Height(height)
	}

	var headerText string
	leftTitle := "Tick History"
	if d.stats.TickCount > 0 {
		rightStats := fmt.Sprintf("Ticks: %d | Last: %dms", d.stats.TickCount, d.stats.LastInterval().Milliseconds())
		availableWidth := width - 4
		spacerWidth := availableWidth - len(leftTitle) - len(rightStats)
		if spacerWidth > 0 {
			headerText = leftTitle + strings.Repeat(" ", spacerWidth) + rightStats
		} else {
			headerText = leftTitle
		}
	} else {
		headerText = leftTitle
	}

	title := deckTitleStyle.Render(headerText)

	contentLines := height - 3
	if contentLines < 1 {
		contentLines = 1
	}

	var content string
	switch {
	case len(d.stats.RecentIntervals) > 0:
		content = d.renderContent(width-2, contentLines)
	case ctx.Mode == model.ModeLive:
		content = renderLoadingPlaceholder(width-2, contentLines)
	default:
		content = helpStyle.Render("No ticks yet. Press space to go live.")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (d *TickHistoryDeck) renderContent(deckWidth, availableLines int) string {
	chartHeight := availableLines
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := deckWidth - 2
	if chartWidth < 20 {
		chartWidth = 20
	}

	intervals := d.stats.RecentIntervals
	maxBars := chartWidth / 2
	startIdx := 0
	if len(intervals) > maxBars {
		startIdx = len(intervals) - maxBars
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)
	for _, interval := range intervals[startIdx:] {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "interval", Value: float64(interval.Milliseconds()), Style: barStyle},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
