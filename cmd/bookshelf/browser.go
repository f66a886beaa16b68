package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/tui/dashboard"
)

// runBrowser launches the interactive dashboard.
func runBrowser(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	screen := dashboard.NewScreen()
	ctrl := app.NewController(screen)
	ctrl.Start()

	app.Logger.Info("launching dashboard")

	m := dashboard.NewModel(ctrl, screen,
		dashboard.WithLogger(app.Logger),
		dashboard.WithUnicode(supportsUnicode(os.Stdout)),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	app.Logger.Info("dashboard closed")
	return nil
}
