package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the composition unit the widgets are built from: the configurator
// screen, the preview, and any host-defined screen all satisfy it. Update
// returns a View rather than a concrete type so a parent can hold and swap
// child views without knowing what they are; the returned value replaces
// the receiver, which keeps pointer and value implementations both legal.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
