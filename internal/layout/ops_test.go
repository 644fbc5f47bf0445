package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePanels() PanelLayout {
	return PanelLayout{
		Left:   PanelSlot("nav"),
		Middle: PanelSlot("main"),
		Right:  PanelSlot("sidebar"),
	}
}

func TestAssign_MovesPanelAndOverwritesOccupant(t *testing.T) {
	l := Assign(threePanels(), "nav", Right)

	assert.True(t, l.Left.IsEmpty(), "old slot should be vacated")
	assert.Equal(t, "main", l.Middle.Panel)
	assert.Equal(t, "nav", l.Right.Panel, "moved panel replaces the occupant")
	assert.False(t, l.Contains("sidebar"), "overwritten occupant is dropped")
}

func TestAssign_FromCatalogIntoEmptySlot(t *testing.T) {
	var l PanelLayout
	l = Assign(l, "console", Middle)

	assert.Equal(t, "console", l.Middle.Panel)
	assert.True(t, l.Left.IsEmpty())
	assert.True(t, l.Right.IsEmpty())
}

func TestAssign_AppendsIntoTabsGroup(t *testing.T) {
	l := threePanels()
	l = CreateGroup(l, []string{"console", "terminal"}, Right)
	l = Assign(l, "nav", Right)

	g := l.Right.Group
	require.NotNil(t, g)
	assert.Equal(t, []string{"console", "terminal", "nav"}, g.Panels)
	assert.True(t, l.Left.IsEmpty(), "nav left its old slot")
}

func TestAssign_ReAddToSameGroupIsNoop(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"console", "terminal"}, Right)
	before := l

	l = Assign(l, "terminal", Right)
	assert.Equal(t, before, l)
}

func TestAssign_EmptyIDIsNoop(t *testing.T) {
	l := threePanels()
	assert.Equal(t, l, Assign(l, "", Left))
}

func TestRemovePanel_SingleAndIdempotent(t *testing.T) {
	l := RemovePanel(threePanels(), "main")
	assert.True(t, l.Middle.IsEmpty())

	// Removing again changes nothing.
	assert.Equal(t, l, RemovePanel(l, "main"))
}

func TestRemovePanel_CollapsesTwoMemberGroupToSingle(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"console", "terminal"}, Right)
	l = RemovePanel(l, "terminal")

	assert.Nil(t, l.Right.Group, "one-member group must collapse")
	assert.Equal(t, "console", l.Right.Panel)
}

func TestRemovePanel_FiltersLargerGroup(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b", "c"}, Left)
	l = RemovePanel(l, "b")

	g := l.Left.Group
	require.NotNil(t, g)
	assert.Equal(t, []string{"a", "c"}, g.Panels)
}

func TestRemovePanel_DoesNotMutateInput(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b", "c"}, Left)

	_ = RemovePanel(l, "b")
	assert.Equal(t, []string{"a", "b", "c"}, l.Left.Group.Panels)
}

func TestSwap_ExchangesSlots(t *testing.T) {
	l := Swap(threePanels(), Left, Middle)

	assert.Equal(t, "main", l.Left.Panel)
	assert.Equal(t, "nav", l.Middle.Panel)
	assert.Equal(t, "sidebar", l.Right.Panel)
}

func TestSwap_RoundTripRestoresLayout(t *testing.T) {
	orig := threePanels()
	l := Swap(Swap(orig, Left, Right), Left, Right)
	assert.Equal(t, orig, l)
}

func TestSwap_CarriesGroupsWholesale(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b"}, Left)
	l = Assign(l, "main", Right)
	l = Swap(l, Left, Right)

	assert.Equal(t, "main", l.Left.Panel)
	require.NotNil(t, l.Right.Group)
	assert.Equal(t, []string{"a", "b"}, l.Right.Group.Panels)
}

func TestSwap_SamePositionIsNoop(t *testing.T) {
	l := threePanels()
	assert.Equal(t, l, Swap(l, Middle, Middle))
}

func TestCreateGroup_FromUnplacedPanels(t *testing.T) {
	l := PanelLayout{Middle: PanelSlot("main")}
	l = CreateGroup(l, []string{"console", "terminal"}, Right)

	g := l.Right.Group
	require.NotNil(t, g)
	assert.Equal(t, Tabs, g.Kind)
	assert.Equal(t, []string{"console", "terminal"}, g.Panels)
	assert.Equal(t, 0, g.Config.DefaultActiveTab)
	assert.Equal(t, "main", l.Middle.Panel)
}

func TestCreateGroup_PullsMembersFromOtherSlots(t *testing.T) {
	l := threePanels()
	l = CreateGroup(l, []string{"nav", "sidebar"}, Left)

	require.NotNil(t, l.Left.Group)
	assert.Equal(t, []string{"nav", "sidebar"}, l.Left.Group.Panels)
	assert.True(t, l.Right.IsEmpty(), "sidebar moved into the group")
}

func TestCreateGroup_RejectsFewerThanTwo(t *testing.T) {
	l := threePanels()
	assert.Equal(t, l, CreateGroup(l, []string{"nav"}, Right))
	assert.Equal(t, l, CreateGroup(l, nil, Right))
	// Duplicates collapse to one distinct id: still rejected.
	assert.Equal(t, l, CreateGroup(l, []string{"x", "x"}, Right))
}

func TestToggleGroupMode_WrapsAndUnwraps(t *testing.T) {
	l := PanelLayout{Left: PanelSlot("nav")}

	l = ToggleGroupMode(l, Left)
	require.NotNil(t, l.Left.Group)
	assert.Equal(t, Tabs, l.Left.Group.Kind)
	assert.Equal(t, []string{"nav"}, l.Left.Group.Panels)

	l = ToggleGroupMode(l, Left)
	assert.Nil(t, l.Left.Group)
	assert.Equal(t, "nav", l.Left.Panel)
}

func TestToggleGroupMode_EmptySlot(t *testing.T) {
	var l PanelLayout

	l = ToggleGroupMode(l, Middle)
	require.NotNil(t, l.Middle.Group, "empty slot becomes an empty tabs group")
	assert.Empty(t, l.Middle.Group.Panels)

	l = ToggleGroupMode(l, Middle)
	assert.True(t, l.Middle.IsEmpty())
}

func TestToggleGroupMode_TilesBecomeTabs(t *testing.T) {
	l := PanelLayout{Left: Slot{Group: &Group{Kind: Tiles, Panels: []string{"a", "b"}}}}

	l = ToggleGroupMode(l, Left)
	require.NotNil(t, l.Left.Group)
	assert.Equal(t, Tabs, l.Left.Group.Kind)
	assert.Equal(t, []string{"a", "b"}, l.Left.Group.Panels)
}

func TestUpdateGroupConfig_MergesPartial(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b"}, Right)

	edge := TabEdgeBottom
	tab := 1
	l = UpdateGroupConfig(l, Right, GroupConfigPatch{DefaultActiveTab: &tab, TabEdge: &edge})

	g := l.Right.Group
	require.NotNil(t, g)
	assert.Equal(t, 1, g.Config.DefaultActiveTab)
	assert.Equal(t, TabEdgeBottom, g.Config.TabEdge)
	assert.False(t, g.Config.Centered, "untouched field keeps its value")
}

func TestUpdateGroupConfig_NoopOnNonGroup(t *testing.T) {
	l := threePanels()
	c := true
	assert.Equal(t, l, UpdateGroupConfig(l, Left, GroupConfigPatch{Centered: &c}))
}

func TestClearSlot_DropsGroupOutright(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b"}, Middle)
	l = ClearSlot(l, Middle)
	assert.True(t, l.Middle.IsEmpty())
}

func TestRemoveFromGroup_CollapseRule(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"console", "terminal"}, Right)

	l = RemoveFromGroup(l, Right, "terminal")
	assert.Equal(t, "console", l.Right.Panel)

	// Not a group anymore: further removals via the group path are no-ops.
	assert.Equal(t, l, RemoveFromGroup(l, Right, "console"))
}

func TestActiveTab_ClampsAtReadTime(t *testing.T) {
	g := &Group{Kind: Tabs, Panels: []string{"a", "b"}, Config: GroupConfig{DefaultActiveTab: 7}}
	assert.Equal(t, 1, g.ActiveTab())

	g.Config.DefaultActiveTab = -3
	assert.Equal(t, 0, g.ActiveTab())

	empty := &Group{Kind: Tabs}
	assert.Equal(t, 0, empty.ActiveTab())
}

func TestFind_LocatesGroupMembers(t *testing.T) {
	var l PanelLayout
	l = CreateGroup(l, []string{"a", "b"}, Right)
	l = Assign(l, "main", Middle)

	pos, ok := l.Find("b")
	require.True(t, ok)
	assert.Equal(t, Right, pos)

	_, ok = l.Find("ghost")
	assert.False(t, ok)
}
