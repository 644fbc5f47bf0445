// Package app wires the configurator, split container, collapse controller
// and carousel into the demo application.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panelkit/internal/carousel"
	"panelkit/internal/collapse"
	"panelkit/internal/configurator"
	"panelkit/internal/layout"
	"panelkit/internal/split"
	"panelkit/internal/tabgroup"
	"panelkit/internal/theme"
)

const carouselItemWidth = 16

// Options configures the demo.
type Options struct {
	Duration time.Duration // collapse/expand animation length
	Theme    theme.Theme
}

// AppModel is the root model: a configurator screen and a live preview of
// the configured layout inside the resizable split.
type AppModel struct {
	Mode AppMode

	Config   *configurator.View
	Split    *split.Model
	Collapse *collapse.Controller
	Carousel *carousel.Model

	Catalog layout.Catalog
	Layout  layout.PanelLayout
	Theme   theme.Theme

	width, height int
}

// NewAppModel creates the root application model.
func NewAppModel(catalog layout.Catalog, initial layout.PanelLayout, opts Options) *AppModel {
	if opts.Duration <= 0 {
		opts.Duration = 300 * time.Millisecond
	}

	sp := split.New([3]float64{20, 60, 20}, [3]float64{5, 20, 5})
	ctrl := collapse.New(sp, collapse.Options{
		Left:     collapse.SideConfig{DefaultSize: 20, Min: 5, Collapsible: true},
		Right:    collapse.SideConfig{DefaultSize: 20, Min: 5, Collapsible: true},
		Duration: opts.Duration,
	})

	m := &AppModel{
		Mode:     ModeConfigure,
		Config:   configurator.New(catalog, initial, opts.Theme),
		Split:    sp,
		Collapse: ctrl,
		Carousel: carousel.New(len(catalog), carouselItemWidth, 1),
		Catalog:  catalog,
		Layout:   initial,
		Theme:    opts.Theme,
	}
	m.Config.OnChange = func(l layout.PanelLayout) { m.Layout = l }
	return m
}

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

var _ tea.Model = (*appModelAdapter)(nil)

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Config.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.Split.Update(msg)
		a.Carousel.SetViewport(msg.Width)
		v, _ := a.Config.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2})
		a.Config = v.(*configurator.View)
		return a, nil

	case collapse.FrameMsg:
		return a, a.Collapse.Update(msg)
	case carousel.FrameMsg:
		return a, a.Carousel.Update(msg)

	case split.DragStartMsg:
		a.Collapse.OnDragStart()
		return a, nil
	case split.DragResizeMsg:
		a.Collapse.OnDragResize(sideFor(msg.Region), msg.Size)
		return a, nil
	case split.DragEndMsg:
		a.Collapse.OnDragEnd()
		return a, nil

	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
	}

	switch a.Mode {
	case ModeConfigure:
		v, cmd := a.Config.Update(msg)
		a.Config = v.(*configurator.View)
		return a, cmd
	case ModePreview:
		return a, a.Split.Update(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "p":
		if a.Mode == ModeConfigure {
			a.Mode = ModePreview
			return nil, true
		}
	case "esc":
		if a.Mode == ModePreview {
			a.Mode = ModeConfigure
			return nil, true
		}
	case "[":
		if a.Mode == ModePreview {
			return a.Collapse.Toggle(collapse.SideLeft), true
		}
	case "]":
		if a.Mode == ModePreview {
			return a.Collapse.Toggle(collapse.SideRight), true
		}
	case ",":
		if a.Mode == ModePreview {
			return a.Carousel.Prev(), true
		}
	case ".":
		if a.Mode == ModePreview {
			return a.Carousel.Next(), true
		}
	}
	return nil, false
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	switch a.Mode {
	case ModePreview:
		return a.previewView()
	default:
		return a.Config.View() + "\n" +
			a.Theme.Hint.Render("p preview · q quit")
	}
}

func (a *appModelAdapter) previewView() string {
	body := a.Split.View(a.Theme,
		a.renderSlot(layout.Left),
		a.renderSlot(layout.Middle),
		a.renderSlot(layout.Right),
	)
	strip := a.Carousel.View(a.Theme, a.carouselItems())
	hint := a.Theme.Hint.Render("[ ] collapse · , . scroll · drag handles · esc back · q quit")
	return body + "\n" + strip + "\n" + hint
}

// renderSlot draws one slot's content for the preview regions.
func (a *appModelAdapter) renderSlot(pos layout.Position) string {
	s := a.Layout.At(pos)
	switch {
	case s.IsEmpty():
		return a.Theme.SlotEmpty.Render("empty")
	case s.Group != nil:
		return tabgroup.Render(a.Theme, s.Group, a.Catalog, 0, 0)
	}
	def, ok := a.Catalog.Lookup(s.Panel)
	if !ok {
		return ""
	}
	if def.Preview != "" {
		return def.Preview
	}
	return a.Theme.Title.Render(def.Label)
}

func (a *appModelAdapter) carouselItems() []string {
	items := make([]string, len(a.Catalog))
	for i, def := range a.Catalog {
		marker := " "
		if a.Layout.Contains(def.ID) {
			marker = "·"
		}
		items[i] = fmt.Sprintf("%s %s", marker, def.Label)
	}
	return items
}

func sideFor(region layout.Position) collapse.Side {
	if region == layout.Left {
		return collapse.SideLeft
	}
	return collapse.SideRight
}
