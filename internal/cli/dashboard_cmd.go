package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	profile := app.Profile

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive fitness dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app, profile)
		},
	}

	addProfileFlags(cmd.Flags(), &profile)

	return cmd
}

// runDashboard runs the TUI until the user quits.
func runDashboard(ctx context.Context, app *App, profile Profile) error {
	m := newAppModel(app, profile)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
