package tui

import (
	"strings"
	"testing"

	"github.com/clocklab/clocklab/internal/model"
)

func TestInfoTabsCycle(t *testing.T) {
	t.Parallel()

	tabs := NewInfoTabsDeck()
	if got := tabs.Active(); got != TabImplementation {
		t.Fatalf("initial tab = %v, want TabImplementation", got)
	}

	tabs.Next()
	if got := tabs.Active(); got != TabBenefits {
		t.Fatalf("after Next = %v, want TabBenefits", got)
	}

	tabs.Next()
	if got := tabs.Active(); got != TabImplementation {
		t.Fatalf("Next did not wrap: %v", got)
	}

	tabs.Prev()
	if got := tabs.Active(); got != TabBenefits {
		t.Fatalf("Prev did not wrap: %v", got)
	}
}

func TestTabContentDependsOnMode(t *testing.T) {
	t.Parallel()

	for _, tab := range []InfoTab{TabImplementation, TabBenefits} {
		static := TabContent(tab, model.ModeStatic)
		live := TabContent(tab, model.ModeLive)
		if static == "" || live == "" {
			t.Fatalf("tab %v has empty content", tab)
		}
		if static == live {
			t.Fatalf("tab %v content identical across modes", tab)
		}
	}
}

func TestInfoTabsRenderShowsActiveTab(t *testing.T) {
	t.Parallel()

	tabs := NewInfoTabsDeck()
	ctx := ViewContext{ContentWidth: 100, ContentHeight: 30, Mode: model.ModeLive}

	out := tabs.Render(ctx, 80, 12, false)
	if !strings.Contains(out, "Implementation") || !strings.Contains(out, "Benefits") {
		t.Fatal("tab bar missing tab titles")
	}
	if !strings.Contains(out, "generation") {
		t.Fatal("live implementation prose not rendered")
	}

	tabs.Next()
	out = tabs.Render(ctx, 80, 12, false)
	if !strings.Contains(out, "cancellation,") {
		t.Fatal("live benefits prose not rendered")
	}
}
