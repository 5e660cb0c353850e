package cli

import (
	"fmt"

	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the built-in workout plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Catalog.Plans(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlans(plans))
			return nil
		},
	}
}
