package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusboss/internal/logging"
	"focusboss/internal/ui"
)

// WatchCmd runs the live dashboard against a server
type WatchCmd struct {
	API   apiFlags      `embed:""`
	Every time.Duration `help:"How often to poll the server" default:"1m"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Initializing Bubble Tea program", "every", w.Every.String())

	// Ending a day may wait on report generation
	timeout := cli.Settings().GetUpstreamTimeout() + 10*time.Second

	p := tea.NewProgram(
		ui.NewWatchModel(w.API.client(cli), cli.Container.NotificationService, w.Every, timeout),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}
