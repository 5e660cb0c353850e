package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/repository"
	"github.com/alexanderramin/fitcoach/internal/sensor"
	"github.com/google/uuid"
)

type analysisService struct {
	source   sensor.Source
	resolver *advisor.Resolver
	runs     repository.RunRepo
	observer UseCaseObserver
}

// NewAnalysisService wires a classification source to the resolver. runs may
// be nil, in which case analyses are not recorded.
func NewAnalysisService(
	source sensor.Source,
	resolver *advisor.Resolver,
	runs repository.RunRepo,
	observers ...UseCaseObserver,
) AnalysisService {
	return &analysisService{
		source:   source,
		resolver: resolver,
		runs:     runs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analysisService) Analyze(ctx context.Context, req app.AnalysisRequest) (resp *app.AnalysisResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"body":      req.Body,
		"objective": req.Objective,
		"source":    s.source.Name(),
	}
	defer func() {
		observe(ctx, s.observer, "analyze", startedAt, fields, err)
	}()

	body, err := domain.ParseBodyCategory(req.Body)
	if err != nil {
		return nil, &app.AnalysisError{Code: app.AnalysisErrInvalidCategory, Message: err.Error(), Err: err}
	}
	objective, err := domain.ParseObjective(req.Objective)
	if err != nil {
		return nil, &app.AnalysisError{Code: app.AnalysisErrInvalidCategory, Message: err.Error(), Err: err}
	}

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	resp = &app.AnalysisResponse{
		RunID:       uuid.NewString(),
		GeneratedAt: now,
		Body:        body,
		Objective:   objective,
		Source:      s.source.Name(),
	}
	run := &domain.AnalysisRun{
		ID:        resp.RunID,
		Body:      body,
		Objective: objective,
		CreatedAt: now,
	}

	reading, classifyErr := s.source.Classify(ctx)
	if classifyErr != nil {
		resp.NoData = true
		resp.NoDataCause = classifyErr.Error()
		run.Outcome = domain.OutcomeNoData
		fields["outcome"] = string(domain.OutcomeNoData)
	} else {
		decision := s.resolver.Resolve(body, objective, reading.Label)
		resp.Reading = &reading
		resp.Decision = &decision

		run.Outcome = domain.OutcomeCompleted
		run.Label = reading.Label
		run.HeartRate = reading.HeartRate
		run.Status = decision.Status
		run.MatchKind = decision.Match.Kind
		run.MatchedKey = decision.Match.Key.String()
		run.IntensityForecast = decision.IntensityForecast

		fields["outcome"] = string(domain.OutcomeCompleted)
		fields["label"] = string(reading.Label)
		fields["match"] = string(decision.Match.Kind)
	}

	if s.runs != nil {
		// Record even when the caller gave up waiting on the sensor.
		if recErr := s.runs.Create(context.WithoutCancel(ctx), run); recErr != nil {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("analysis was not added to session history: %v", recErr))
		}
	}
	return resp, nil
}
