package cli

import (
	"fmt"

	fitapp "github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/alexanderramin/fitcoach/internal/sensor"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	profile := app.Profile

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify current activity and print a workout plan",
		Long: `Reads one activity classification from the sensor source, derives the
activity status and prints the matching workout, nutrition and intensity plan.

Exits with status 2 when the sensor produced no data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := fitapp.NewAnalysisRequest(string(profile.Body), string(profile.Objective))

			stopSpinner := func() {}
			if app.interactive() {
				stopSpinner = formatter.StartSpinner(cmd.ErrOrStderr(), formatter.SyncMessage)
			}
			resp, err := app.Analysis.Analyze(cmd.Context(), req)
			stopSpinner()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalysis(resp))

			if resp.NoData {
				return &fitapp.AnalysisError{
					Code:    fitapp.AnalysisErrSensorUnavailable,
					Message: "no sensor data this cycle",
					Err:     sensor.ErrSensorUnavailable,
				}
			}
			return nil
		},
	}

	addProfileFlags(cmd.Flags(), &profile)

	return cmd
}
