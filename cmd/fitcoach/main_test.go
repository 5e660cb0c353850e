package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/config"
	"github.com/alexanderramin/fitcoach/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_DefaultsToSimulator(t *testing.T) {
	src, err := newSource(config.Default().Sensor, sensor.NoopObserver{})
	require.NoError(t, err)

	_, ok := src.(*sensor.Simulator)
	assert.True(t, ok)
	assert.Equal(t, "simulator", src.Name())
}

func TestNewSource_EndpointSelectsHTTP(t *testing.T) {
	cfg := config.Default().Sensor
	cfg.Endpoint = "http://127.0.0.1:9000/"
	cfg.Timeout = time.Second

	src, err := newSource(cfg, sensor.NoopObserver{})
	require.NoError(t, err)

	_, ok := src.(*sensor.HTTPSource)
	assert.True(t, ok)
	assert.Equal(t, "inference@http://127.0.0.1:9000", src.Name())
}

func TestNewSource_InvalidSimulatorConfig(t *testing.T) {
	cfg := config.Default().Sensor
	cfg.HeartRateMin = 200
	cfg.HeartRateMax = 100

	src, err := newSource(cfg, sensor.NoopObserver{})
	assert.Error(t, err)
	assert.Nil(t, src)
}

func TestExitCode(t *testing.T) {
	noData := &app.AnalysisError{Code: app.AnalysisErrSensorUnavailable, Message: "no sensor data this cycle", Err: sensor.ErrSensorUnavailable}

	assert.Equal(t, 2, exitCode(noData))
	assert.Equal(t, 2, exitCode(fmt.Errorf("analyze: %w", noData)))
	assert.Equal(t, 1, exitCode(&app.AnalysisError{Code: app.AnalysisErrInvalidCategory, Message: "bad body"}))
	assert.Equal(t, 1, exitCode(errors.New("unknown command")))
}
