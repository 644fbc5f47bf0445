package configurator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panelkit/internal/layout"
	"panelkit/internal/tabgroup"
	"panelkit/internal/theme"
	"panelkit/internal/ui"
)

// panelItem adapts a catalog entry to bubbles' list.
type panelItem struct {
	def    layout.PanelDefinition
	placed bool
}

func (p panelItem) FilterValue() string { return p.def.Label }
func (p panelItem) Title() string {
	if p.placed {
		return p.def.Label + " ·"
	}
	return p.def.Label
}
func (p panelItem) Description() string { return "" }

// keyMap defines the configurator's key bindings.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Focus  key.Binding
	Multi  key.Binding
	Group  key.Binding
	Clear  key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev slot")),
		Next:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next slot")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Multi:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "multi-select")),
		Group:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle tab group")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear slot")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Focus, k.Multi, k.Group, k.Clear, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

const (
	areaSlots   = "slots"
	areaCatalog = "catalog"

	slotStripTop    = 2 // title + blank line
	slotStripHeight = 5
)

// View is the interactive layout configurator: a slot strip over a panel
// catalog, driven by clicks or keys, building layouts without drag-and-drop.
type View struct {
	machine Machine
	layout  layout.PanelLayout
	catalog layout.Catalog
	theme   theme.Theme

	// OnChange receives every new layout value; the host's copy stays
	// authoritative.
	OnChange func(layout.PanelLayout)

	catalogList list.Model
	focus       ui.FocusManager
	zones       ui.ZoneSet
	cursor      int  // slot cursor while the strip has focus
	multi       bool // sticky grouping modifier for the keyboard path
	keys        keyMap
	help        help.Model

	width, height int
}

// New creates a configurator over the host's layout value.
func New(catalog layout.Catalog, initial layout.PanelLayout, th theme.Theme) *View {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = th.Selected
	d.Styles.SelectedDesc = th.Selected
	d.Styles.NormalTitle = th.Muted
	d.Styles.NormalDesc = th.Muted

	l := list.New(nil, d, 0, 0)
	l.Title = "Panels"
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &View{
		layout:      initial,
		catalog:     catalog,
		theme:       th,
		catalogList: l,
		focus:       ui.FocusManager{Current: areaSlots, Order: []string{areaSlots, areaCatalog}},
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	v.refreshCatalog()
	return v
}

var _ ui.View = (*View)(nil)

// Layout returns the current layout value.
func (v *View) Layout() layout.PanelLayout { return v.layout }

// Selection exposes the machine state for rendering and tests.
func (v *View) Selection() Selection { return v.machine.Selection() }

// Init implements ui.View.
func (v *View) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (v *View) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		listTop := slotStripTop + slotStripHeight + 1
		v.catalogList.SetWidth(msg.Width)
		v.catalogList.SetHeight(maxInt(msg.Height-listTop-1, 1))
		return v, nil
	case tea.MouseMsg:
		v.updateMouse(msg)
		return v, nil
	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	var cmd tea.Cmd
	v.catalogList, cmd = v.catalogList.Update(msg)
	return v, cmd
}

func (v *View) updateKeys(msg tea.KeyMsg) (ui.View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Focus):
		v.focus.Next()
		return v, nil
	case key.Matches(msg, v.keys.Cancel):
		v.machine.Reset()
		v.multi = false
		return v, nil
	case key.Matches(msg, v.keys.Multi):
		v.multi = !v.multi
		return v, nil
	case key.Matches(msg, v.keys.Group):
		v.apply(v.machine.ToggleGroupMode(v.layout, layout.Positions[v.cursor]))
		return v, nil
	case key.Matches(msg, v.keys.Clear):
		if v.focus.Current == areaSlots {
			v.apply(v.machine.ClearSlot(v.layout, layout.Positions[v.cursor]))
		}
		return v, nil
	}

	if v.focus.Current == areaSlots {
		switch {
		case key.Matches(msg, v.keys.Prev):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, v.keys.Next):
			if v.cursor < len(layout.Positions)-1 {
				v.cursor++
			}
		case key.Matches(msg, v.keys.Select):
			v.apply(v.machine.ClickSlot(v.layout, layout.Positions[v.cursor], v.multi))
		}
		return v, nil
	}

	if key.Matches(msg, v.keys.Select) {
		if item, ok := v.catalogList.SelectedItem().(panelItem); ok {
			v.apply(v.machine.ClickPanel(v.layout, item.def.ID, v.multi))
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.catalogList, cmd = v.catalogList.Update(msg)
	return v, cmd
}

func (v *View) updateMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	zone, ok := v.zones.At(msg.X, msg.Y)
	if !ok {
		return
	}
	multi := msg.Shift || v.multi
	switch {
	case strings.HasPrefix(zone.ID, "slot:"):
		v.focus.SetFocus(areaSlots)
		pos := positionByName(strings.TrimPrefix(zone.ID, "slot:"))
		v.cursor = int(pos)
		v.apply(v.machine.ClickSlot(v.layout, pos, multi))
	case strings.HasPrefix(zone.ID, "panel:"):
		v.focus.SetFocus(areaCatalog)
		v.apply(v.machine.ClickPanel(v.layout, strings.TrimPrefix(zone.ID, "panel:"), multi))
	}
}

// apply commits a machine result: on change the layout is replaced and the
// host notified.
func (v *View) apply(next layout.PanelLayout, changed bool) {
	if !changed {
		return
	}
	v.layout = next
	v.refreshCatalog()
	if v.OnChange != nil {
		v.OnChange(next)
	}
}

// refreshCatalog re-marks which panels are already placed.
func (v *View) refreshCatalog() {
	items := make([]list.Item, len(v.catalog))
	for i, def := range v.catalog {
		items[i] = panelItem{def: def, placed: v.layout.Contains(def.ID)}
	}
	v.catalogList.SetItems(items)
}

// View implements ui.View. Rendering rebuilds the frame's hit zones.
func (v *View) View() string {
	if v.width == 0 {
		v.width = 80
	}
	v.zones.Reset()

	var b strings.Builder
	title := "Layout"
	if v.multi {
		title += " " + v.theme.Selected.Render("[multi-select]")
	}
	b.WriteString(v.theme.Title.Render(title) + "\n\n")
	b.WriteString(v.renderSlots() + "\n")
	b.WriteString(v.renderCatalog() + "\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *View) renderSlots() string {
	sel := v.machine.Selection()
	slotW := maxInt(v.width/3-2, 8)
	boxes := make([]string, 0, 3)
	for i, pos := range layout.Positions {
		style := v.theme.Slot
		armed := sel.Kind == SlotArmed && sel.Slot == pos
		if armed || (v.focus.Current == areaSlots && v.cursor == i) {
			style = v.theme.SlotSelected
		}
		body := v.slotBody(pos, slotW)
		label := v.theme.Muted.Render(pos.String())
		boxes = append(boxes, style.Width(slotW).Height(slotStripHeight-2).Render(label+"\n"+body))

		v.zones.Add(ui.Zone{
			ID: "slot:" + pos.String(),
			X:  i * (slotW + 2), Y: slotStripTop,
			W: slotW + 2, H: slotStripHeight,
		})
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (v *View) slotBody(pos layout.Position, width int) string {
	s := v.layout.At(pos)
	switch {
	case s.IsEmpty():
		return v.theme.SlotEmpty.Render("empty")
	case s.Group != nil:
		bar := tabgroup.Bar(v.theme, s.Group, v.catalog, 0)
		return fmt.Sprintf("%s %s", bar, v.theme.Muted.Render(fmt.Sprintf("(%d)", len(s.Group.Panels))))
	}
	if def, ok := v.catalog.Lookup(s.Panel); ok {
		return v.theme.Normal.Render(def.Label)
	}
	// Unknown id: render nothing for the slot's content.
	return ""
}

func (v *View) renderCatalog() string {
	sel := v.machine.Selection()
	top := slotStripTop + slotStripHeight + 1

	// One row per item with the compact delegate; zones map clicks back to
	// ids through the current page offset.
	perPage := v.catalogList.Paginator.PerPage
	start := v.catalogList.Paginator.Page * perPage
	items := v.catalogList.Items()
	for row := 0; row < perPage && start+row < len(items); row++ {
		if item, ok := items[start+row].(panelItem); ok {
			v.zones.Add(ui.Zone{
				ID: "panel:" + item.def.ID,
				X:  0, Y: top + row,
				W: v.width, H: 1,
			})
		}
	}

	out := v.catalogList.View()
	if sel.Kind == MultiArmed {
		out += "\n" + v.theme.Hint.Render(
			"group: "+strings.Join(sel.Multi, ", ")+" (click an empty slot to create)")
	} else if sel.Kind == PanelArmed {
		out += "\n" + v.theme.Hint.Render("armed: "+sel.Panel+" (click a slot to place)")
	}
	return out
}

func positionByName(name string) layout.Position {
	for _, pos := range layout.Positions {
		if pos.String() == name {
			return pos
		}
	}
	return layout.Left
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
