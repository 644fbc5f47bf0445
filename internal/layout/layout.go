// Package layout defines the three-slot panel layout model and the pure
// operations that transform it. A layout value is an immutable snapshot:
// every operation returns a new value and never mutates its input, so the
// interaction layer and the host can pass layouts around freely.
package layout

// Position identifies one of the three fixed slots.
type Position int

const (
	Left Position = iota
	Middle
	Right
)

// Positions lists all slots in display order.
var Positions = [3]Position{Left, Middle, Right}

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	}
	return "unknown"
}

// GroupKind selects how a group presents its members.
type GroupKind string

const (
	Tabs  GroupKind = "tabs"
	Tiles GroupKind = "tiles"
)

// TabEdge is the edge the tab bar renders on.
type TabEdge string

const (
	TabEdgeTop    TabEdge = "top"
	TabEdgeBottom TabEdge = "bottom"
)

// TileDirection is the axis tiles are laid out along.
type TileDirection string

const (
	TileRow    TileDirection = "row"
	TileColumn TileDirection = "column"
)

// GroupConfig holds presentation hints for a group. DefaultActiveTab is not
// bounds-checked at write time; renderers clamp it at read time (see
// Group.ActiveTab).
type GroupConfig struct {
	DefaultActiveTab int
	TabEdge          TabEdge
	Centered         bool
	TileDirection    TileDirection
	TileSizes        []float64
}

// Group is an ordered collection of panel ids displayed together in one
// slot. Order is significant: it defines tab order / tile order.
type Group struct {
	Kind   GroupKind
	Panels []string
	Config GroupConfig
}

// Contains reports whether id is a member of the group.
func (g *Group) Contains(id string) bool {
	for _, p := range g.Panels {
		if p == id {
			return true
		}
	}
	return false
}

// ActiveTab returns DefaultActiveTab clamped to [0, len(Panels)-1].
// Out-of-range values are a documented non-error: stored as-is, clamped
// here on every read.
func (g *Group) ActiveTab() int {
	n := g.Config.DefaultActiveTab
	if n < 0 {
		return 0
	}
	if last := len(g.Panels) - 1; n > last {
		if last < 0 {
			return 0
		}
		return last
	}
	return n
}

// clone returns a deep copy so operations never mutate a shared group.
func (g *Group) clone() *Group {
	ng := *g
	ng.Panels = append([]string(nil), g.Panels...)
	ng.Config.TileSizes = append([]float64(nil), g.Config.TileSizes...)
	return &ng
}

// Slot is one layout position's content: nothing, exactly one panel, or a
// group. The zero value is the empty slot.
type Slot struct {
	Panel string
	Group *Group
}

// IsEmpty reports whether the slot holds neither a panel nor a group.
func (s Slot) IsEmpty() bool { return s.Panel == "" && s.Group == nil }

// IsGroup reports whether the slot holds a group.
func (s Slot) IsGroup() bool { return s.Group != nil }

// PanelSlot returns a slot holding a single panel.
func PanelSlot(id string) Slot { return Slot{Panel: id} }

// Panels returns the ids visible in the slot, in order.
func (s Slot) Panels() []string {
	switch {
	case s.Group != nil:
		return append([]string(nil), s.Group.Panels...)
	case s.Panel != "":
		return []string{s.Panel}
	}
	return nil
}

// PanelLayout is the full three-slot layout. The zero value is all-empty.
type PanelLayout struct {
	Left   Slot
	Middle Slot
	Right  Slot
}

// At returns the slot at pos.
func (l PanelLayout) At(pos Position) Slot {
	switch pos {
	case Left:
		return l.Left
	case Middle:
		return l.Middle
	case Right:
		return l.Right
	}
	return Slot{}
}

// with returns a copy of l with pos replaced by s.
func (l PanelLayout) with(pos Position, s Slot) PanelLayout {
	switch pos {
	case Left:
		l.Left = s
	case Middle:
		l.Middle = s
	case Right:
		l.Right = s
	}
	return l
}

// Find returns the position holding id, either as a single panel or as a
// group member.
func (l PanelLayout) Find(id string) (Position, bool) {
	for _, pos := range Positions {
		s := l.At(pos)
		if s.Panel == id || (s.Group != nil && s.Group.Contains(id)) {
			return pos, true
		}
	}
	return 0, false
}

// Contains reports whether id is placed anywhere in the layout.
func (l PanelLayout) Contains(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// PanelDefinition is a static catalog entry supplied by the host. The model
// never interprets Preview; it is opaque renderable content.
type PanelDefinition struct {
	ID      string
	Label   string
	Preview string
}

// Catalog is the host-supplied set of available panels.
type Catalog []PanelDefinition

// Lookup returns the definition for id. Unknown ids are not an error;
// renderers skip them silently.
func (c Catalog) Lookup(id string) (PanelDefinition, bool) {
	for _, d := range c {
		if d.ID == id {
			return d, true
		}
	}
	return PanelDefinition{}, false
}
