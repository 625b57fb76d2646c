package tui

import (
	"strings"

	"github.com/clocklab/clocklab/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// InfoTab identifies one of the descriptive text tabs.
type InfoTab int

const (
	TabImplementation InfoTab = iota
	TabBenefits
)

var infoTabTitles = []string{"Implementation", "Benefits"}

// InfoTabsDeck shows mode-dependent explanatory text in two tabs. The
// content is static prose; the active mode only selects which block is
// shown.
type InfoTabsDeck struct {
	active InfoTab
}

// NewInfoTabsDeck creates the info tabs with the first tab selected.
func NewInfoTabsDeck() *InfoTabsDeck {
	return &InfoTabsDeck{}
}

func (d *InfoTabsDeck) ID() string    { return "info" }
func (d *InfoTabsDeck) Title() string { return "Info" }

// Active returns the selected tab.
func (d *InfoTabsDeck) Active() InfoTab { return d.active }

// Next selects the following tab, wrapping around.
func (d *InfoTabsDeck) Next() {
	d.active = InfoTab((int(d.active) + 1) % len(infoTabTitles))
}

// Prev selects the preceding tab, wrapping around.
func (d *InfoTabsDeck) Prev() {
	d.active = InfoTab((int(d.active) - 1 + len(infoTabTitles)) % len(infoTabTitles))
}

func (d *InfoTabsDeck) ContentLines(_ ViewContext) int { return 9 }

func (d *InfoTabsDeck) Render(ctx ViewContext, width, height int, active bool) string {
	style := sectionStyle.Width(width).Height(height)
	if active {
		style = activeSectionStyle.Width(width).Height(height)
	}

	tabBar := d.renderTabBar()
	body := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Width(width - 4).
		Render(TabContent(d.active, ctx.Mode))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, tabBar, "", body))
}

func (d *InfoTabsDeck) renderTabBar() string {
	activeTabStyle := lipgloss.NewStyle().
		Foreground(ColorNavy).
		Background(ColorBlue).
		Bold(true).
		Padding(0, 1)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Padding(0, 1)

	tabs := make([]string, 0, len(infoTabTitles))
	for i, title := range infoTabTitles {
		if InfoTab(i) == d.active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return strings.Join(tabs, " ")
}

// TabContent returns the prose for a tab under the given mode.
func TabContent(tab InfoTab, mode model.Mode) string {
	switch tab {
	case TabBenefits:
		if mode == model.ModeLive {
			return "Live mode keeps the display current without any user action. " +
				"The widget owns its whole refresh loop, including cancellation, " +
				"so no other component can leak its timer."
		}
		return "Static mode costs nothing after the first paint. The timestamp " +
			"captured at initialization is stable, which makes the output " +
			"deterministic between render passes and trivially cacheable."

	default: // TabImplementation
		if mode == model.ModeLive {
			return "In live mode the widget arms a 1-second tick after its " +
				"one-time initialization. Each tick rewrites the timestamp and " +
				"re-arms itself. Every tick carries a generation counter; " +
				"switching modes bumps the generation, so a tick already in " +
				"flight is recognized as stale and dropped."
		}
		return "In static mode the widget renders a placeholder on its first " +
			"frame, then captures one timestamp when the initialization " +
			"message arrives. No timer is armed. The placeholder shares the " +
			"real content's shape, so hydrating it causes no layout shift."
	}
}
