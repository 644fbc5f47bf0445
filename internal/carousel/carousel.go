// Package carousel implements a horizontally snapping strip of fixed-width
// items: scrolling always settles on the nearest item edge.
package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"panelkit/internal/collapse"
	"panelkit/internal/theme"
)

const frameInterval = time.Second / 60

// FrameMsg is one scroll animation tick.
type FrameMsg struct {
	gen int
	at  time.Time
}

// Model is the carousel scroll state. Offsets are in cells from the left
// edge of the first item.
type Model struct {
	itemWidth int
	gap       int
	count     int
	viewport  int

	offset float64

	animating bool
	from      float64
	target    float64
	start     time.Time
	duration  time.Duration
	easing    collapse.Easing
	gen       int
}

// New creates a carousel over count items of itemWidth cells, separated by
// gap cells.
func New(count, itemWidth, gap int) *Model {
	return &Model{
		itemWidth: itemWidth,
		gap:       gap,
		count:     count,
		duration:  250 * time.Millisecond,
		easing:    collapse.CubicInOut,
	}
}

// SetViewport sets the visible width in cells.
func (m *Model) SetViewport(width int) {
	m.viewport = width
	m.offset = m.clampOffset(m.offset)
}

// Offset returns the current scroll offset.
func (m *Model) Offset() float64 { return m.offset }

// Animating reports whether a snap scroll is in flight.
func (m *Model) Animating() bool { return m.animating }

// edge returns item i's left edge offset.
func (m *Model) edge(i int) float64 {
	return float64(i * (m.itemWidth + m.gap))
}

// maxOffset is the furthest the strip can scroll left.
func (m *Model) maxOffset() float64 {
	total := m.count*m.itemWidth + (m.count-1)*m.gap
	if total <= m.viewport {
		return 0
	}
	return float64(total - m.viewport)
}

func (m *Model) clampOffset(off float64) float64 {
	if off < 0 {
		return 0
	}
	if max := m.maxOffset(); off > max {
		return max
	}
	return off
}

// NearestEdge returns the index of the item edge closest to the given
// offset. Simple nearest-edge search over all items.
func (m *Model) NearestEdge(off float64) int {
	best, bestDist := 0, -1.0
	for i := 0; i < m.count; i++ {
		d := off - m.edge(i)
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ScrollBy shifts the offset without snapping (mouse wheel / drag path).
func (m *Model) ScrollBy(delta float64) {
	if m.animating {
		return
	}
	m.offset = m.clampOffset(m.offset + delta)
}

// SnapNearest animates to the nearest item edge.
func (m *Model) SnapNearest() tea.Cmd {
	return m.snapTo(m.NearestEdge(m.offset))
}

// Next snaps one item forward.
func (m *Model) Next() tea.Cmd {
	return m.snapTo(m.NearestEdge(m.offset) + 1)
}

// Prev snaps one item back.
func (m *Model) Prev() tea.Cmd {
	return m.snapTo(m.NearestEdge(m.offset) - 1)
}

func (m *Model) snapTo(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i > m.count-1 {
		i = m.count - 1
	}
	target := m.clampOffset(m.edge(i))
	if target == m.offset {
		m.animating = false
		return nil
	}
	m.animating = true
	m.from = m.offset
	m.target = target
	m.start = time.Now()
	m.gen++
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	gen := m.gen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{gen: gen, at: t}
	})
}

// Update advances the snap animation.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.gen != m.gen || !m.animating {
		return nil
	}
	return m.tick(fm.at)
}

func (m *Model) tick(now time.Time) tea.Cmd {
	p := float64(now.Sub(m.start)) / float64(m.duration)
	if p < 0 {
		p = 0
	}
	if p >= 1 {
		m.offset = m.target // land exactly on the edge
		m.animating = false
		return nil
	}
	m.offset = m.from + (m.target-m.from)*m.easing(p)
	return m.frame()
}

// View renders the visible window over the given item strings.
func (m *Model) View(th theme.Theme, items []string) string {
	if m.viewport <= 0 || len(items) == 0 {
		return ""
	}
	cells := make([]string, 0, len(items))
	for i, it := range items {
		cell := th.Region.Width(m.itemWidth).Render(it)
		if i > 0 && m.gap > 0 {
			cell = lipgloss.NewStyle().MarginLeft(m.gap).Render(cell)
		}
		cells = append(cells, cell)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return clip(strip, int(m.offset), m.viewport)
}

// clip cuts a horizontal window out of every line of the strip. Cutting is
// ANSI-aware so styled item content survives with its escapes intact.
func clip(strip string, off, width int) string {
	var out []string
	for _, line := range splitLines(strip) {
		out = append(out, ansi.Cut(line, off, off+width))
	}
	return joinLines(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
