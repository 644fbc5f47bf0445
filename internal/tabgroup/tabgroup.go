// Package tabgroup renders a layout.Group inside a bounded cell, as a tab
// bar plus active panel or as tiles. Panel ids missing from the catalog are
// skipped silently; an out-of-range default tab is clamped at read time.
package tabgroup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panelkit/internal/layout"
	"panelkit/internal/theme"
)

// Active resolves the group's active panel after clamping, skipping ids the
// catalog does not know. Returns false when nothing is renderable.
func Active(g *layout.Group, catalog layout.Catalog) (layout.PanelDefinition, bool) {
	if g == nil || len(g.Panels) == 0 {
		return layout.PanelDefinition{}, false
	}
	idx := g.ActiveTab()
	if def, ok := catalog.Lookup(g.Panels[idx]); ok {
		return def, true
	}
	// Active id unknown: fall back to the first known member.
	for _, id := range g.Panels {
		if def, ok := catalog.Lookup(id); ok {
			return def, true
		}
	}
	return layout.PanelDefinition{}, false
}

// Bar renders the tab bar line for a tabs group. Unknown ids render
// nothing; the active tab gets the active style.
func Bar(th theme.Theme, g *layout.Group, catalog layout.Catalog, width int) string {
	if g == nil {
		return ""
	}
	active := g.ActiveTab()
	var tabs []string
	for i, id := range g.Panels {
		def, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		style := th.TabInactive
		if i == active {
			style = th.TabActive
		}
		tabs = append(tabs, style.Render(def.Label))
	}
	bar := strings.Join(tabs, "  ")
	if g.Config.Centered && width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
	}
	return bar
}

// Render draws the whole group in a width x height cell.
func Render(th theme.Theme, g *layout.Group, catalog layout.Catalog, width, height int) string {
	if g == nil {
		return ""
	}
	if g.Kind == layout.Tiles {
		return renderTiles(th, g, catalog, width, height)
	}

	bar := Bar(th, g, catalog, width)
	body := ""
	if def, ok := Active(g, catalog); ok {
		body = def.Preview
		if body == "" {
			body = def.Label
		}
	}
	bodyHeight := height - 1
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	content := th.Region.Width(width).Height(bodyHeight).Render(body)
	if g.Config.TabEdge == layout.TabEdgeBottom {
		return lipgloss.JoinVertical(lipgloss.Left, content, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

// renderTiles splits the cell along the configured direction. TileSizes are
// percentages; missing or short lists fall back to an even split.
func renderTiles(th theme.Theme, g *layout.Group, catalog layout.Catalog, width, height int) string {
	var defs []layout.PanelDefinition
	for _, id := range g.Panels {
		if def, ok := catalog.Lookup(id); ok {
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		return ""
	}

	total := width
	if g.Config.TileDirection == layout.TileColumn {
		total = height
	}
	spans := tileSpans(g.Config.TileSizes, len(defs), total)

	cells := make([]string, len(defs))
	for i, def := range defs {
		body := def.Preview
		if body == "" {
			body = def.Label
		}
		if g.Config.TileDirection == layout.TileColumn {
			cells[i] = th.Region.Width(width).Height(spans[i]).Render(body)
		} else {
			cells[i] = th.Region.Width(spans[i]).Height(height).Render(body)
		}
	}
	if g.Config.TileDirection == layout.TileColumn {
		return lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// tileSpans converts percentage sizes to cell spans over total, assigning
// the rounding remainder to the last tile.
func tileSpans(sizes []float64, n, total int) []int {
	spans := make([]int, n)
	used := 0
	for i := 0; i < n; i++ {
		pct := 100.0 / float64(n)
		if i < len(sizes) && sizes[i] > 0 {
			pct = sizes[i]
		}
		spans[i] = int(float64(total) * pct / 100)
		used += spans[i]
	}
	if n > 0 && total > used {
		spans[n-1] += total - used
	}
	return spans
}
