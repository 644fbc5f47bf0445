package split

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panelkit/internal/layout"
	"panelkit/internal/theme"
)

// DragStartMsg is emitted when the user grabs a resize handle.
type DragStartMsg struct{}

// DragResizeMsg is emitted for every drag movement with the region's new
// size in percent.
type DragResizeMsg struct {
	Region layout.Position
	Size   float64
}

// DragEndMsg reports the committed three-way split when a drag finishes.
type DragEndMsg struct {
	Sizes [3]float64
}

// Model is a three-region split container rendered as terminal columns.
// It implements Splitter; the collapse controller drives it imperatively
// while mouse drags flow out as messages.
type Model struct {
	sizes     [3]float64 // percent of width, summing to 100 when all active
	min       [3]float64
	collapsed [3]bool

	width  int // 0 until the first WindowSizeMsg; Layout returns nil then
	height int

	dragging bool
	handle   int // 0 = left/middle boundary, 1 = middle/right
}

// New creates a split with the given default and minimum sizes in percent.
func New(defaults, min [3]float64) *Model {
	return &Model{sizes: defaults, min: min, handle: -1}
}

var _ Splitter = (*Model)(nil)

// Resize sets one region's size without touching the others. A nonzero
// size clears the region's collapsed mark.
func (m *Model) Resize(region layout.Position, size float64) {
	if size < 0 {
		size = 0
	}
	if size > 100 {
		size = 100
	}
	m.sizes[region] = size
	if size > 0 {
		m.collapsed[region] = false
	}
}

// Collapse zeroes a region canonically, avoiding epsilon-close floats at
// the end of an animation.
func (m *Model) Collapse(region layout.Position) {
	m.sizes[region] = 0
	m.collapsed[region] = true
}

// Layout returns the current sizes, or nil before the container is sized.
func (m *Model) Layout() []float64 {
	if m.width == 0 {
		return nil
	}
	out := make([]float64, 3)
	copy(out, m.sizes[:])
	return out
}

// SetLayout replaces all region sizes at once.
func (m *Model) SetLayout(sizes []float64) {
	for i := 0; i < len(sizes) && i < 3; i++ {
		m.sizes[i] = sizes[i]
		if sizes[i] > 0 {
			m.collapsed[i] = false
		}
	}
}

// Sizes returns the current split as a fixed array.
func (m *Model) Sizes() [3]float64 { return m.sizes }

// Dragging reports whether a handle drag is in progress.
func (m *Model) Dragging() bool { return m.dragging }

// Update handles window sizing and mouse drags on the two handles.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.width == 0 {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if h := m.handleAt(msg.X); h >= 0 {
			m.dragging = true
			m.handle = h
			return func() tea.Msg { return DragStartMsg{} }
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			return nil
		}
		return m.dragTo(msg.X)
	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		m.dragging = false
		m.handle = -1
		sizes := m.sizes
		return func() tea.Msg { return DragEndMsg{Sizes: sizes} }
	}
	return nil
}

// handleAt returns the handle index at column x, or -1. A one-cell
// tolerance keeps thin handles grabbable.
func (m *Model) handleAt(x int) int {
	h0 := m.cols(0)
	h1 := h0 + 1 + m.cols(1)
	switch {
	case absInt(x-h0) <= 1:
		return 0
	case absInt(x-h1) <= 1:
		return 1
	}
	return -1
}

// dragTo resizes the outer region on the dragged handle's side and emits
// the new size. The middle region absorbs the remainder at render time.
func (m *Model) dragTo(x int) tea.Cmd {
	var region layout.Position
	var pct float64
	if m.handle == 0 {
		region = layout.Left
		pct = float64(x) / float64(m.width) * 100
	} else {
		region = layout.Right
		pct = float64(m.width-1-x) / float64(m.width) * 100
	}
	if pct < m.min[region] {
		pct = m.min[region]
	}
	if max := 100 - m.min[layout.Middle] - m.sizes[otherOuter(region)]; pct > max {
		pct = max
	}
	m.Resize(region, pct)
	return func() tea.Msg { return DragResizeMsg{Region: region, Size: pct} }
}

func otherOuter(region layout.Position) layout.Position {
	if region == layout.Left {
		return layout.Right
	}
	return layout.Left
}

// cols converts a region's percentage to terminal columns, reserving one
// column per visible handle.
func (m *Model) cols(i int) int {
	usable := m.width - 2
	if usable < 0 {
		usable = 0
	}
	return int(float64(usable) * m.sizes[i] / 100)
}

// View renders the three regions side by side with styled handles. Content
// for a zero-width region is omitted entirely.
func (m *Model) View(th theme.Theme, left, middle, right string) string {
	if m.width == 0 {
		return ""
	}
	lw, rw := m.cols(0), m.cols(2)
	mw := m.width - 2 - lw - rw
	if mw < 0 {
		mw = 0
	}
	handle := th.Handle
	if m.dragging {
		handle = th.HandleActive
	}
	bar := handle.Render("│")

	parts := make([]string, 0, 5)
	if lw > 0 {
		parts = append(parts, th.Region.Width(lw).Height(m.height).Render(left))
	}
	parts = append(parts, bar)
	parts = append(parts, th.Region.Width(mw).Height(m.height).Render(middle))
	parts = append(parts, bar)
	if rw > 0 {
		parts = append(parts, th.Region.Width(rw).Height(m.height).Render(right))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
