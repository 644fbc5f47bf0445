// Package configurator turns pointer clicks on slots and catalog panels
// into layout operations through a one-item-of-context selection machine.
// The machine owns no layout: every input takes the current layout and
// returns the next one, leaving the host's value authoritative.
package configurator

import "panelkit/internal/layout"

// SelectionKind enumerates the machine's states.
type SelectionKind int

const (
	Idle SelectionKind = iota
	SlotArmed
	PanelArmed
	MultiArmed
)

// Selection is the transient record of the last thing the user clicked,
// awaiting a completing second click. It never escapes to the host.
type Selection struct {
	Kind  SelectionKind
	Slot  layout.Position // SlotArmed
	Panel string          // PanelArmed
	Multi []string        // MultiArmed, insertion-ordered
}

// Machine is the click-interpreting state machine. Idle is both the initial
// state and the state after every completing action.
type Machine struct {
	sel Selection
}

// Selection returns the current selection for rendering.
func (m *Machine) Selection() Selection { return m.sel }

// Reset discards any armed selection.
func (m *Machine) Reset() { m.sel = Selection{} }

// ClickSlot handles a click on a slot. The multi flag is the grouping
// modifier (shift). Returns the possibly-updated layout and whether it
// changed.
func (m *Machine) ClickSlot(l layout.PanelLayout, pos layout.Position, multi bool) (layout.PanelLayout, bool) {
	switch m.sel.Kind {
	case SlotArmed:
		if m.sel.Slot == pos {
			// Guards against an accidental self-swap; stays armed.
			return l, false
		}
		armed := m.sel.Slot
		m.Reset()
		return layout.Swap(l, armed, pos), true

	case PanelArmed:
		id := m.sel.Panel
		m.Reset()
		return layout.Assign(l, id, pos), true

	case MultiArmed:
		if len(m.sel.Multi) >= 2 && l.At(pos).IsEmpty() {
			ids := m.sel.Multi
			m.Reset()
			return layout.CreateGroup(l, ids, pos), true
		}
		if len(m.sel.Multi) == 1 {
			id := m.sel.Multi[0]
			m.Reset()
			return layout.Assign(l, id, pos), true
		}
		// A filled slot cannot complete a group build; stay armed.
		return l, false
	}

	m.sel = Selection{Kind: SlotArmed, Slot: pos}
	return l, false
}

// ClickPanel handles a click on a catalog panel. With the multi modifier
// the machine enters (or edits) the explicit group-building mode.
func (m *Machine) ClickPanel(l layout.PanelLayout, id string, multi bool) (layout.PanelLayout, bool) {
	switch m.sel.Kind {
	case SlotArmed:
		pos := m.sel.Slot
		if g := l.At(pos).Group; g != nil && g.Kind == layout.Tabs {
			// Armed tab group keeps collecting panels.
			next := layout.Assign(l, id, pos)
			return next, !layoutEqual(l, next)
		}
		m.Reset()
		return layout.Assign(l, id, pos), true

	case PanelArmed:
		if multi {
			m.sel = Selection{Kind: MultiArmed, Multi: toggleID([]string{m.sel.Panel}, id)}
			return l, false
		}
		if m.sel.Panel == id {
			m.Reset() // second click on the armed panel disarms
			return l, false
		}
		m.sel.Panel = id
		return l, false

	case MultiArmed:
		m.sel.Multi = toggleID(m.sel.Multi, id)
		if len(m.sel.Multi) == 0 {
			m.Reset()
		}
		return l, false
	}

	if multi {
		m.sel = Selection{Kind: MultiArmed, Multi: []string{id}}
	} else {
		m.sel = Selection{Kind: PanelArmed, Panel: id}
	}
	return l, false
}

// ClearSlot empties a slot outright, bypassing selection.
func (m *Machine) ClearSlot(l layout.PanelLayout, pos layout.Position) (layout.PanelLayout, bool) {
	m.Reset()
	if l.At(pos).IsEmpty() {
		return l, false
	}
	return layout.ClearSlot(l, pos), true
}

// RemoveFromGroup drops one member from the group at pos. Selection is left
// alone.
func (m *Machine) RemoveFromGroup(l layout.PanelLayout, pos layout.Position, id string) (layout.PanelLayout, bool) {
	next := layout.RemoveFromGroup(l, pos, id)
	return next, !layoutEqual(l, next)
}

// ToggleGroupMode flips the armed slot (or pos when idle) between grouped
// and ungrouped, staying armed so following panel clicks append members.
func (m *Machine) ToggleGroupMode(l layout.PanelLayout, pos layout.Position) (layout.PanelLayout, bool) {
	if m.sel.Kind != SlotArmed {
		m.sel = Selection{Kind: SlotArmed, Slot: pos}
	}
	return layout.ToggleGroupMode(l, m.sel.Slot), true
}

// toggleID adds id to the ordered set, or removes it when present.
func toggleID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(append([]string(nil), ids[:i]...), ids[i+1:]...)
		}
	}
	return append(append([]string(nil), ids...), id)
}

func layoutEqual(a, b layout.PanelLayout) bool {
	for _, pos := range layout.Positions {
		sa, sb := a.At(pos), b.At(pos)
		if sa.Panel != sb.Panel || (sa.Group == nil) != (sb.Group == nil) {
			return false
		}
		if sa.Group == nil {
			continue
		}
		if sa.Group.Kind != sb.Group.Kind || len(sa.Group.Panels) != len(sb.Group.Panels) {
			return false
		}
		for i := range sa.Group.Panels {
			if sa.Group.Panels[i] != sb.Group.Panels[i] {
				return false
			}
		}
	}
	return true
}
