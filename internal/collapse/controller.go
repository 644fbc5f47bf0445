// Package collapse animates the two outer split regions between their
// current size and zero, redistributing freed space into the middle region.
//
// All per-frame layout recomputation happens in one scheduler: each tick
// reads the live size of both sides (animated or committed) and derives the
// middle region's size once. Both sides can therefore animate at the same
// time without fighting over space.
package collapse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panelkit/internal/layout"
	"panelkit/internal/split"
)

// Side selects one of the two collapsible outer regions.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Position maps a side to its split region.
func (s Side) Position() layout.Position {
	if s == SideLeft {
		return layout.Left
	}
	return layout.Right
}

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Sizes is the committed three-way split reported to the host.
type Sizes struct {
	Left   float64
	Middle float64
	Right  float64
}

// Callbacks notify the host of lifecycle events. Nil fields are skipped.
type Callbacks struct {
	OnCollapseStart    func(Side)
	OnCollapseComplete func(Side)
	OnExpandStart      func(Side)
	OnExpandComplete   func(Side)
	OnPanelResize      func(Sizes)
}

// SideConfig configures one outer region.
type SideConfig struct {
	DefaultSize    float64 // percent, used when no prior size is known
	Min            float64 // smallest size a drag may reach
	Collapsible    bool
	StartCollapsed bool
}

// Options configures a Controller.
type Options struct {
	Left     SideConfig
	Right    SideConfig
	Duration time.Duration // animation length; 0 means 300ms
	Easing   Easing        // nil means CubicInOut
	Callbacks
}

// FrameMsg is one animation tick. Hosts must route it to Update.
type FrameMsg struct {
	gen int
	at  time.Time
}

const frameInterval = time.Second / 60

// sideState is owned exclusively by the controller; hosts observe committed
// values through callbacks only.
type sideState struct {
	Collapsed   bool
	Animating   bool
	CurrentSize float64 // last committed size; restored on expand

	fromSize float64
	toSize   float64
	animSize float64 // live interpolated size, valid while Animating
	start    time.Time
	expand   bool
}

// Controller drives a split.Splitter's imperative API to animate collapse
// and expand of the outer regions.
type Controller struct {
	split split.Splitter
	opts  Options

	left     sideState
	right    sideState
	dragging bool

	gen int // invalidates frames from cancelled animations
}

// New creates a controller over the given splitter. The splitter may be nil
// or unmounted; animation then degrades to per-region resizes.
func New(sp split.Splitter, opts Options) *Controller {
	if opts.Duration <= 0 {
		opts.Duration = 300 * time.Millisecond
	}
	if opts.Easing == nil {
		opts.Easing = CubicInOut
	}
	c := &Controller{split: sp, opts: opts}
	c.left.CurrentSize = opts.Left.DefaultSize
	c.right.CurrentSize = opts.Right.DefaultSize
	if opts.Left.StartCollapsed {
		c.left.Collapsed = true
	}
	if opts.Right.StartCollapsed {
		c.right.Collapsed = true
	}
	return c
}

// Collapsed reports whether a side is collapsed. True from the moment a
// collapse starts, so dependent UI updates before the first frame paints.
func (c *Controller) Collapsed(side Side) bool { return c.state(side).Collapsed }

// Animating reports whether a side's animation is in flight.
func (c *Controller) Animating(side Side) bool { return c.state(side).Animating }

// CurrentSize returns a side's last committed size.
func (c *Controller) CurrentSize(side Side) float64 { return c.state(side).CurrentSize }

// Toggle collapses an expanded side or expands a collapsed one. Silently
// ignored while that side is animating or while a drag is in progress.
func (c *Controller) Toggle(side Side) tea.Cmd {
	if c.state(side).Animating || c.dragging {
		return nil
	}
	if c.state(side).Collapsed {
		return c.ExpandSide(side)
	}
	return c.CollapseSide(side)
}

// CollapseSide animates side from its current size to zero. A no-op if the
// side is not collapsible, already collapsed, or a drag is in progress. Any
// in-flight animation on the same side is cancelled first.
func (c *Controller) CollapseSide(side Side) tea.Cmd {
	st, cfg := c.state(side), c.config(side)
	if !cfg.Collapsible || c.dragging || (st.Collapsed && !st.Animating) {
		return nil
	}
	from := st.CurrentSize
	if st.Animating {
		from = st.animSize
	}
	// Collapsed and Animating flip synchronously so handles disable before
	// the first frame.
	st.Collapsed = true
	if c.opts.OnCollapseStart != nil {
		c.opts.OnCollapseStart(side)
	}
	return c.startAnim(side, from, 0, false)
}

// ExpandSide animates side from zero back to its remembered size. A no-op
// if the side is not collapsed or a drag is in progress.
func (c *Controller) ExpandSide(side Side) tea.Cmd {
	st, cfg := c.state(side), c.config(side)
	if c.dragging || (!st.Collapsed && !st.Animating) {
		return nil
	}
	target := st.CurrentSize
	if target <= 0 {
		target = cfg.DefaultSize
	}
	from := 0.0
	if st.Animating {
		from = st.animSize
	}
	st.Collapsed = false
	if c.opts.OnExpandStart != nil {
		c.opts.OnExpandStart(side)
	}
	return c.startAnim(side, from, target, true)
}

// startAnim arms a side's animation and returns the first frame command.
// Bumping gen drops any frame already scheduled by a prior animation, so at
// most one loop is live.
func (c *Controller) startAnim(side Side, from, to float64, expand bool) tea.Cmd {
	st := c.state(side)
	st.Animating = true
	st.fromSize = from
	st.toSize = to
	st.animSize = from
	st.start = time.Now()
	st.expand = expand

	c.gen++
	return c.frame()
}

func (c *Controller) frame() tea.Cmd {
	gen := c.gen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{gen: gen, at: t}
	})
}

// Update advances animations. Only FrameMsg is consumed; everything else
// passes through untouched.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.gen != c.gen {
		return nil
	}
	return c.tick(fm.at)
}

// tick advances every animating side to time now, applies the combined
// layout once, and finishes sides whose progress reached 1.
func (c *Controller) tick(now time.Time) tea.Cmd {
	var done []Side
	for _, side := range [2]Side{SideLeft, SideRight} {
		st := c.state(side)
		if !st.Animating {
			continue
		}
		p := clamp01(float64(now.Sub(st.start)) / float64(c.opts.Duration))
		st.animSize = st.fromSize + (st.toSize-st.fromSize)*c.opts.Easing(p)
		if p >= 1 {
			st.animSize = st.toSize // snap exactly
			done = append(done, side)
		}
	}

	c.applyLayout()

	for _, side := range done {
		c.finish(side)
	}
	if c.left.Animating || c.right.Animating {
		return c.frame()
	}
	return nil
}

// applyLayout writes the full three-way split derived from both sides' live
// sizes. Degraded path: without a mounted layout only the animating regions
// are resized, leaving the sibling untouched.
func (c *Controller) applyLayout() {
	if c.split == nil {
		return
	}
	if c.split.Layout() == nil {
		for _, side := range [2]Side{SideLeft, SideRight} {
			if st := c.state(side); st.Animating {
				c.split.Resize(side.Position(), st.animSize)
			}
		}
		return
	}
	l, r := c.liveSize(SideLeft), c.liveSize(SideRight)
	c.split.SetLayout([]float64{l, 100 - l - r, r})
}

// liveSize is the size a side occupies this tick: the interpolated value
// while animating, zero while collapsed, the committed size otherwise.
func (c *Controller) liveSize(side Side) float64 {
	st := c.state(side)
	switch {
	case st.Animating:
		return st.animSize
	case st.Collapsed:
		return 0
	}
	return st.CurrentSize
}

// finish commits a side's animation end state and notifies the host.
func (c *Controller) finish(side Side) {
	st := c.state(side)
	st.Animating = false
	if st.expand {
		st.CurrentSize = st.toSize
		if c.opts.OnExpandComplete != nil {
			c.opts.OnExpandComplete(side)
		}
	} else {
		// The native collapse puts the region in a canonical zero state
		// rather than an epsilon-close float. CurrentSize keeps the
		// pre-collapse value so expand can restore it.
		if c.split != nil {
			c.split.Collapse(side.Position())
		}
		if c.opts.OnCollapseComplete != nil {
			c.opts.OnCollapseComplete(side)
		}
	}
	if c.opts.OnPanelResize != nil {
		c.opts.OnPanelResize(c.sizes())
	}
}

// OnDragStart records that a handle drag began. Animations in flight keep
// running; their resize writes win frame by frame, but drag resizes are
// rejected until they complete (see OnDragResize).
func (c *Controller) OnDragStart() { c.dragging = true }

// OnDragResize accepts a drag-committed size for one side. Rejected while
// either side is animating, so animation and drag never write concurrently.
func (c *Controller) OnDragResize(side Side, newSize float64) {
	if c.left.Animating || c.right.Animating {
		return
	}
	st := c.state(side)
	st.CurrentSize = newSize
	if newSize > 0 {
		st.Collapsed = false
	}
}

// OnDragEnd clears the drag flag and reports the committed split.
func (c *Controller) OnDragEnd() {
	c.dragging = false
	if c.opts.OnPanelResize != nil {
		c.opts.OnPanelResize(c.sizes())
	}
}

// sizes reads the committed split, preferring the mounted container's own
// layout over the controller's view of it.
func (c *Controller) sizes() Sizes {
	if c.split != nil {
		if sz := c.split.Layout(); len(sz) == 3 {
			return Sizes{Left: sz[0], Middle: sz[1], Right: sz[2]}
		}
	}
	l, r := c.liveSize(SideLeft), c.liveSize(SideRight)
	return Sizes{Left: l, Middle: 100 - l - r, Right: r}
}

func (c *Controller) state(side Side) *sideState {
	if side == SideLeft {
		return &c.left
	}
	return &c.right
}

func (c *Controller) config(side Side) SideConfig {
	if side == SideLeft {
		return c.opts.Left
	}
	return c.opts.Right
}
