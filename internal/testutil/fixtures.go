package testutil

import (
	"time"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/google/uuid"
)

type RunOption func(*domain.AnalysisRun)

func WithProfile(body domain.BodyCategory, objective domain.Objective) RunOption {
	return func(r *domain.AnalysisRun) {
		r.Body = body
		r.Objective = objective
	}
}

// WithReading sets the detected activity and recomputes the derived status.
func WithReading(label domain.ActivityLabel, heartRate int) RunOption {
	return func(r *domain.AnalysisRun) {
		r.Label = label
		r.HeartRate = heartRate
		r.Status = advisor.DeriveStatus(label)
	}
}

func WithNoData() RunOption {
	return func(r *domain.AnalysisRun) {
		r.Outcome = domain.OutcomeNoData
		r.Label = ""
		r.HeartRate = 0
		r.Status = ""
		r.MatchKind = ""
		r.MatchedKey = ""
		r.IntensityForecast = 0
	}
}

func WithCreatedAt(at time.Time) RunOption {
	return func(r *domain.AnalysisRun) {
		r.CreatedAt = at
	}
}

// NewTestRun returns a completed overweight/cardio run detected as Walking.
func NewTestRun(opts ...RunOption) *domain.AnalysisRun {
	r := &domain.AnalysisRun{
		ID:                uuid.New().String(),
		Body:              domain.BodyOverweight,
		Objective:         domain.ObjectiveCardio,
		Outcome:           domain.OutcomeCompleted,
		Label:             domain.ActivityWalking,
		HeartRate:         112,
		Status:            domain.StatusActive,
		MatchKind:         domain.MatchExact,
		MatchedKey:        "overweight/cardio",
		IntensityForecast: 75,
		CreatedAt:         time.Now().UTC(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}
