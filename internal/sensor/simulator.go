package sensor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexanderramin/fitcoach/internal/domain"
)

var errSimulatedDropout = errors.New("simulated sensor dropout")

// SimulatorConfig controls the demo classification source.
type SimulatorConfig struct {
	Latency      time.Duration
	HeartRateMin int
	HeartRateMax int
	FailureRate  float64 // probability in [0,1] that a call fails
	Seed         uint64  // 0 seeds from the clock
}

// DefaultSimulatorConfig returns the demo defaults: 1.2s latency and a
// 70-160 BPM range.
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Latency:      1200 * time.Millisecond,
		HeartRateMin: 70,
		HeartRateMax: 160,
	}
}

// Simulator is a random stand-in for a trained activity classifier.
// It is safe for concurrent use.
type Simulator struct {
	cfg      SimulatorConfig
	observer Observer
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator validates cfg and returns a Simulator.
func NewSimulator(cfg SimulatorConfig, observer Observer) (*Simulator, error) {
	if cfg.HeartRateMin <= 0 || cfg.HeartRateMax < cfg.HeartRateMin {
		return nil, fmt.Errorf("simulator heart rate range %d-%d is invalid", cfg.HeartRateMin, cfg.HeartRateMax)
	}
	if cfg.FailureRate < 0 || cfg.FailureRate > 1 {
		return nil, fmt.Errorf("simulator failure rate %v outside [0,1]", cfg.FailureRate)
	}
	if cfg.Latency < 0 {
		return nil, fmt.Errorf("simulator latency %s is negative", cfg.Latency)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Simulator{
		cfg:      cfg,
		observer: observerOrNoop(observer),
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (s *Simulator) Name() string { return "simulator" }

// Classify waits for the configured latency, then draws a label and heart rate.
func (s *Simulator) Classify(ctx context.Context) (domain.Reading, error) {
	start := time.Now()
	reading, err := s.classify(ctx)
	report(ctx, s.observer, s.Name(), start, err)
	return reading, err
}

func (s *Simulator) classify(ctx context.Context) (domain.Reading, error) {
	if s.cfg.Latency > 0 {
		timer := time.NewTimer(s.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Reading{}, unavailable(ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return domain.Reading{}, unavailable(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.FailureRate > 0 && s.rng.Float64() < s.cfg.FailureRate {
		return domain.Reading{}, unavailable(errSimulatedDropout)
	}
	label := domain.SimulatedActivities[s.rng.IntN(len(domain.SimulatedActivities))]
	hr := s.cfg.HeartRateMin + s.rng.IntN(s.cfg.HeartRateMax-s.cfg.HeartRateMin+1)

	return domain.Reading{
		Label:      label,
		HeartRate:  hr,
		Source:     s.Name(),
		CapturedAt: s.now().UTC(),
	}, nil
}
