package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"panelkit/internal/app"
	"panelkit/internal/layout"
	"panelkit/internal/theme"
)

var (
	flagDuration time.Duration
	flagNoMouse  bool
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "panelkit",
	Short: "Interactive demo of the panelkit layout widgets",
	Long: `panelkit starts the layout configurator with a fixture panel catalog.
Build a layout by clicking (or keyboard-selecting) slots and panels, then
press p to preview it inside the resizable, collapsible split.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 300*time.Millisecond, "collapse/expand animation duration")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support")
	rootCmd.Flags().StringVar(&flagLogFile, "log", "", "append debug logs to this file")
}

func run(cmd *cobra.Command, args []string) error {
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "panelkit")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}

	m := app.NewAppModel(fixtureCatalog(), initialLayout(), app.Options{
		Duration: flagDuration,
		Theme:    theme.Default(),
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !flagNoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func fixtureCatalog() layout.Catalog {
	return layout.Catalog{
		{ID: "nav", Label: "Navigator", Preview: "src/\n  widgets/\n  themes/\nREADME.md"},
		{ID: "main", Label: "Editor", Preview: "func main() {\n\t...\n}"},
		{ID: "sidebar", Label: "Outline", Preview: "• Model\n• Update\n• View"},
		{ID: "console", Label: "Console", Preview: "> ready"},
		{ID: "terminal", Label: "Terminal", Preview: "$"},
		{ID: "log", Label: "Log", Preview: "nothing to report"},
	}
}

func initialLayout() layout.PanelLayout {
	return layout.PanelLayout{
		Left:   layout.PanelSlot("nav"),
		Middle: layout.PanelSlot("main"),
		Right:  layout.PanelSlot("sidebar"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
