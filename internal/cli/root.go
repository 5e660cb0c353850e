package cli

import (
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/service"
	"github.com/spf13/cobra"
)

// Profile is the body category and objective an analysis runs against.
type Profile struct {
	Body      domain.BodyCategory
	Objective domain.Objective
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analysis service.AnalysisService
	History  service.HistoryService
	Catalog  service.CatalogService

	// Profile seeds the --body/--objective flags and the TUI session.
	Profile Profile

	// SourceName labels the classification source in the profile pane.
	SourceName string

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fitcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitcoach",
		Short:         "AI smart fitness dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runDashboard(cmd.Context(), app, app.Profile)
		},
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newPlansCmd(app),
		newDashboardCmd(app),
	)

	return root
}
