package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/sensor"
)

// StubSource replays scripted readings. Once the script is exhausted the last
// step repeats. A step with Err set fails the call.
type StubSource struct {
	mu    sync.Mutex
	steps []StubStep
	calls int
}

type StubStep struct {
	Label     domain.ActivityLabel
	HeartRate int
	Err       error
}

func NewStubSource(steps ...StubStep) *StubSource {
	return &StubSource{steps: steps}
}

// Reading is a successful step.
func Reading(label domain.ActivityLabel, heartRate int) StubStep {
	return StubStep{Label: label, HeartRate: heartRate}
}

// Unavailable is a failing step.
func Unavailable() StubStep {
	return StubStep{Err: sensor.ErrSensorUnavailable}
}

func (s *StubSource) Name() string { return "stub" }

func (s *StubSource) Classify(ctx context.Context) (domain.Reading, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reading{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return domain.Reading{}, sensor.ErrSensorUnavailable
	}
	i := s.calls
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	s.calls++

	step := s.steps[i]
	if step.Err != nil {
		return domain.Reading{}, step.Err
	}
	return domain.Reading{
		Label:      step.Label,
		HeartRate:  step.HeartRate,
		Source:     s.Name(),
		CapturedAt: time.Now().UTC(),
	}, nil
}

// Calls reports how many times Classify consumed a step.
func (s *StubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
