package layout

// Operations in this file are total: malformed positions and absent ids are
// treated as no-ops, never errors. Each returns a new PanelLayout and leaves
// its input untouched.

// RemovePanel removes id wherever it appears. A slot holding id alone
// becomes empty; a group containing id has it filtered out and is then
// collapsed by the small-group rule (0 members -> empty, 1 -> single panel).
// Removing an absent id is a no-op.
func RemovePanel(l PanelLayout, id string) PanelLayout {
	for _, pos := range Positions {
		s := l.At(pos)
		switch {
		case s.Panel == id:
			l = l.with(pos, Slot{})
		case s.Group != nil && s.Group.Contains(id):
			rest := make([]string, 0, len(s.Group.Panels)-1)
			for _, p := range s.Group.Panels {
				if p != id {
					rest = append(rest, p)
				}
			}
			l = l.with(pos, collapseGroup(s.Group, rest))
		}
	}
	return l
}

// collapseGroup rebuilds a slot for the given remaining members. Groups of
// fewer than two members are not a meaningful state, so they degrade to a
// single panel or an empty slot.
func collapseGroup(g *Group, panels []string) Slot {
	switch len(panels) {
	case 0:
		return Slot{}
	case 1:
		return Slot{Panel: panels[0]}
	default:
		ng := g.clone()
		ng.Panels = panels
		return Slot{Group: ng}
	}
}

// Assign places id at pos. The panel is first removed from wherever it
// currently lives, so an id never appears in two slots. If pos already
// holds a tabs group, id is appended to that group instead of replacing it;
// re-adding an id the group already contains is a no-op. Otherwise the
// slot's previous occupant is overwritten.
func Assign(l PanelLayout, id string, pos Position) PanelLayout {
	if id == "" {
		return l
	}
	if g := l.At(pos).Group; g != nil && g.Kind == Tabs {
		if g.Contains(id) {
			return l
		}
		l = RemovePanel(l, id)
		ng := g.clone()
		ng.Panels = append(ng.Panels, id)
		return l.with(pos, Slot{Group: ng})
	}
	l = RemovePanel(l, id)
	return l.with(pos, PanelSlot(id))
}

// Swap exchanges the contents of two slots wholesale, group structures
// included. Identifiers only move between slots, so uniqueness holds.
func Swap(l PanelLayout, a, b Position) PanelLayout {
	if a == b {
		return l
	}
	sa, sb := l.At(a), l.At(b)
	return l.with(a, sb).with(b, sa)
}

// CreateGroup replaces pos with a new tabs group over ids in the given
// order, removing each id from its current slot first. Fewer than two
// distinct ids cannot form a group; the call is then a no-op.
func CreateGroup(l PanelLayout, ids []string, pos Position) PanelLayout {
	members := dedupe(ids)
	if len(members) < 2 {
		return l
	}
	for _, id := range members {
		l = RemovePanel(l, id)
	}
	return l.with(pos, Slot{Group: &Group{
		Kind:   Tabs,
		Panels: members,
		Config: GroupConfig{DefaultActiveTab: 0},
	}})
}

// ToggleGroupMode flips pos between grouped and ungrouped. A tabs group
// collapses to its first member (or empty). Anything else is wrapped into a
// tabs group ready to receive more members via Assign: a single panel
// becomes a one-member group, an empty slot an empty group, and a tiles
// group keeps its members under the tabs kind.
func ToggleGroupMode(l PanelLayout, pos Position) PanelLayout {
	s := l.At(pos)
	if g := s.Group; g != nil {
		if g.Kind == Tabs {
			if len(g.Panels) == 0 {
				return l.with(pos, Slot{})
			}
			return l.with(pos, PanelSlot(g.Panels[0]))
		}
		ng := g.clone()
		ng.Kind = Tabs
		return l.with(pos, Slot{Group: ng})
	}
	ng := &Group{Kind: Tabs, Config: GroupConfig{DefaultActiveTab: 0}}
	if s.Panel != "" {
		ng.Panels = []string{s.Panel}
	}
	return l.with(pos, Slot{Group: ng})
}

// GroupConfigPatch is a partial GroupConfig; nil fields are left unchanged
// by UpdateGroupConfig.
type GroupConfigPatch struct {
	DefaultActiveTab *int
	TabEdge          *TabEdge
	Centered         *bool
	TileDirection    *TileDirection
	TileSizes        []float64
}

// UpdateGroupConfig merges patch into the group config at pos. A no-op if
// pos does not hold a group.
func UpdateGroupConfig(l PanelLayout, pos Position, patch GroupConfigPatch) PanelLayout {
	g := l.At(pos).Group
	if g == nil {
		return l
	}
	ng := g.clone()
	if patch.DefaultActiveTab != nil {
		ng.Config.DefaultActiveTab = *patch.DefaultActiveTab
	}
	if patch.TabEdge != nil {
		ng.Config.TabEdge = *patch.TabEdge
	}
	if patch.Centered != nil {
		ng.Config.Centered = *patch.Centered
	}
	if patch.TileDirection != nil {
		ng.Config.TileDirection = *patch.TileDirection
	}
	if patch.TileSizes != nil {
		ng.Config.TileSizes = append([]float64(nil), patch.TileSizes...)
	}
	return l.with(pos, Slot{Group: ng})
}

// ClearSlot empties pos outright, dropping whatever it held.
func ClearSlot(l PanelLayout, pos Position) PanelLayout {
	return l.with(pos, Slot{})
}

// RemoveFromGroup removes id from the group at pos, applying the same
// small-group collapse rule as RemovePanel. A no-op if pos does not hold a
// group containing id.
func RemoveFromGroup(l PanelLayout, pos Position, id string) PanelLayout {
	g := l.At(pos).Group
	if g == nil || !g.Contains(id) {
		return l
	}
	rest := make([]string, 0, len(g.Panels)-1)
	for _, p := range g.Panels {
		if p != id {
			rest = append(rest, p)
		}
	}
	return l.with(pos, collapseGroup(g, rest))
}

// dedupe returns ids with duplicates and empties dropped, order preserved.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
