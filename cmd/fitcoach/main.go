package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/cli"
	"github.com/alexanderramin/fitcoach/internal/config"
	"github.com/alexanderramin/fitcoach/internal/db"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/knowledge"
	"github.com/alexanderramin/fitcoach/internal/repository"
	"github.com/alexanderramin/fitcoach/internal/sensor"
	"github.com/alexanderramin/fitcoach/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode lets scripts tell a sensor dropout apart from other failures.
func exitCode(err error) int {
	if app.IsAnalysisErrorCode(err, app.AnalysisErrSensorUnavailable) {
		return 2
	}
	return 1
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// The resolver checks the table against the policy before anything runs.
	resolver, err := advisor.New(knowledge.Default(), advisor.DefaultPolicy())
	if err != nil {
		return err
	}

	var sensorObserver sensor.Observer = sensor.NoopObserver{}
	if cfg.Log.SensorCalls {
		sensorObserver = sensor.NewLogObserver(os.Stderr)
	}
	var useCaseObservers []service.UseCaseObserver
	if cfg.Log.UseCases {
		useCaseObservers = append(useCaseObservers, service.NewLogUseCaseObserver(os.Stderr))
	}

	source, err := newSource(cfg.Sensor, sensorObserver)
	if err != nil {
		return fmt.Errorf("configuring sensor: %w", err)
	}

	// Session history lives only as long as the process.
	database, err := db.OpenSessionDB()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	runRepo := repository.NewSQLiteRunRepo(database)

	cliApp := &cli.App{
		Analysis: service.NewAnalysisService(source, resolver, runRepo, useCaseObservers...),
		History:  service.NewHistoryService(runRepo, cfg.History.Limit, useCaseObservers...),
		Catalog:  service.NewCatalogService(resolver),
		Profile: cli.Profile{
			Body:      domain.BodyCategory(cfg.Profile.Body),
			Objective: domain.Objective(cfg.Profile.Objective),
		},
		SourceName: source.Name(),
	}

	// Detect interactive terminal for the dashboard entrypoint.
	cliApp.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(cliApp)
	return rootCmd.ExecuteContext(context.Background())
}

// newSource picks the HTTP inference source when an endpoint is configured,
// else the simulator.
func newSource(cfg config.SensorConfig, observer sensor.Observer) (sensor.Source, error) {
	if cfg.Endpoint != "" {
		src, err := sensor.NewHTTPSource(sensor.HTTPConfig{
			Endpoint: cfg.Endpoint,
			Timeout:  cfg.Timeout,
		}, observer)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	sim, err := sensor.NewSimulator(sensor.SimulatorConfig{
		Latency:      cfg.Latency,
		HeartRateMin: cfg.HeartRateMin,
		HeartRateMax: cfg.HeartRateMax,
		FailureRate:  cfg.FailureRate,
		Seed:         cfg.Seed,
	}, observer)
	if err != nil {
		return nil, err
	}
	return sim, nil
}
