package tabgroup

import (
	"strings"
	"testing"

	"panelkit/internal/layout"
	"panelkit/internal/theme"
)

var testCatalog = layout.Catalog{
	{ID: "console", Label: "Console", Preview: "console output"},
	{ID: "terminal", Label: "Terminal", Preview: "$"},
	{ID: "log", Label: "Log"},
}

// plainTheme avoids color sequences so string assertions stay simple.
func plainTheme() theme.Theme { return theme.Theme{} }

func tabs(ids ...string) *layout.Group {
	return &layout.Group{Kind: layout.Tabs, Panels: ids}
}

func TestActive_DefaultsToFirstTab(t *testing.T) {
	def, ok := Active(tabs("console", "terminal"), testCatalog)
	if !ok {
		t.Fatal("expected an active panel")
	}
	if def.ID != "console" {
		t.Errorf("active = %q, want console", def.ID)
	}
}

func TestActive_ClampsOutOfRangeIndex(t *testing.T) {
	g := tabs("console", "terminal")
	g.Config.DefaultActiveTab = 9

	def, ok := Active(g, testCatalog)
	if !ok {
		t.Fatal("expected an active panel")
	}
	if def.ID != "terminal" {
		t.Errorf("out-of-range index should clamp to last tab, got %q", def.ID)
	}

	g.Config.DefaultActiveTab = -2
	def, _ = Active(g, testCatalog)
	if def.ID != "console" {
		t.Errorf("negative index should clamp to first tab, got %q", def.ID)
	}
}

func TestActive_SkipsUnknownIDs(t *testing.T) {
	def, ok := Active(tabs("ghost", "terminal"), testCatalog)
	if !ok {
		t.Fatal("expected fallback to a known panel")
	}
	if def.ID != "terminal" {
		t.Errorf("unknown active id should fall back, got %q", def.ID)
	}

	if _, ok := Active(tabs("ghost", "phantom"), testCatalog); ok {
		t.Error("all-unknown group should render nothing")
	}
}

func TestBar_RendersKnownLabelsInOrder(t *testing.T) {
	bar := Bar(plainTheme(), tabs("console", "ghost", "terminal"), testCatalog, 0)

	if !strings.Contains(bar, "Console") || !strings.Contains(bar, "Terminal") {
		t.Errorf("bar missing labels: %q", bar)
	}
	if strings.Contains(bar, "ghost") {
		t.Errorf("unknown id must be skipped silently: %q", bar)
	}
	if strings.Index(bar, "Console") > strings.Index(bar, "Terminal") {
		t.Errorf("tab order must follow group order: %q", bar)
	}
}

func TestRender_TabEdgeBottomPutsBarLast(t *testing.T) {
	g := tabs("console", "terminal")
	g.Config.TabEdge = layout.TabEdgeBottom

	out := Render(plainTheme(), g, testCatalog, 30, 5)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "Console") {
		t.Errorf("bottom edge should render the bar on the last line, got %q", last)
	}
}

func TestRender_TilesRow(t *testing.T) {
	g := &layout.Group{
		Kind:   layout.Tiles,
		Panels: []string{"console", "terminal"},
		Config: layout.GroupConfig{TileDirection: layout.TileRow},
	}
	out := Render(plainTheme(), g, testCatalog, 40, 3)
	if !strings.Contains(out, "console output") || !strings.Contains(out, "$") {
		t.Errorf("tiles should render both previews: %q", out)
	}
}

func TestRender_NilGroup(t *testing.T) {
	if out := Render(plainTheme(), nil, testCatalog, 10, 10); out != "" {
		t.Errorf("nil group renders nothing, got %q", out)
	}
}

func TestTileSpans_EvenSplitAndRemainder(t *testing.T) {
	spans := tileSpans(nil, 3, 10)
	sum := 0
	for _, s := range spans {
		sum += s
	}
	if sum != 10 {
		t.Errorf("spans %v sum to %d, want 10", spans, sum)
	}

	spans = tileSpans([]float64{25, 75}, 2, 40)
	if spans[0] != 10 || spans[1] != 30 {
		t.Errorf("spans = %v, want [10 30]", spans)
	}
}
