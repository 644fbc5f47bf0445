// Package split provides the resizable three-region container backing the
// panel slots: percentage-based region sizes, mouse-drag handles, and the
// imperative handle the collapse controller drives.
package split

import "panelkit/internal/layout"

// Splitter is the imperative handle a split container exposes. Sizes are
// percentages of the container width; a full layout is three values
// summing to 100. Layout returns nil when the container has not been
// mounted (sized) yet; callers are expected to degrade gracefully.
type Splitter interface {
	Resize(region layout.Position, size float64)
	Collapse(region layout.Position)
	Layout() []float64
	SetLayout(sizes []float64)
}
