// Package theme defines the style value object passed explicitly into every
// renderer. There is no package-level mutable singleton: hosts construct a
// Theme (usually Default) and hand it down.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by the default theme.
const (
	ColorAccent    = "86"  // cyan/green - titles, highlights
	ColorHighlight = "205" // magenta - selected items, borders
	ColorDanger    = "196" // red - warnings
	ColorMuted     = "241" // gray - dimmed text, hints
	ColorText      = "252" // light gray - normal text
)

// Theme holds the named style slots the renderers draw with.
type Theme struct {
	// Regions and handles
	Region       lipgloss.Style // a split region's content area
	Handle       lipgloss.Style // resize handle at rest
	HandleActive lipgloss.Style // resize handle while dragging

	// Slots in the configurator
	Slot         lipgloss.Style // an unselected slot box
	SlotSelected lipgloss.Style // an armed slot box
	SlotEmpty    lipgloss.Style // empty-slot placeholder text

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// General text
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Region: lipgloss.NewStyle(),
		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		HandleActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		Slot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		SlotSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(0, 1),
		SlotEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Italic(true),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}
