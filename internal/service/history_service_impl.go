package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/repository"
)

type historyService struct {
	runs         repository.RunRepo
	defaultLimit int
	observer     UseCaseObserver
}

func NewHistoryService(runs repository.RunRepo, defaultLimit int, observers ...UseCaseObserver) HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &historyService{
		runs:         runs,
		defaultLimit: defaultLimit,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) History(ctx context.Context, req app.HistoryRequest) (resp *app.HistoryResponse, err error) {
	startedAt := time.Now().UTC()
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	fields := map[string]any{"limit": limit}
	defer func() {
		observe(ctx, s.observer, "history", startedAt, fields, err)
	}()

	runs, err := s.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}
	tally, err := s.runs.Tally(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing session history: %w", err)
	}

	resp = &app.HistoryResponse{
		Runs: make([]domain.AnalysisRun, 0, len(runs)),
		Summary: app.HistorySummary{
			Total:     tally.Total,
			Completed: tally.Completed,
			NoData:    tally.NoData,
			Sedentary: tally.Sedentary,
			Active:    tally.Active,
		},
	}
	for _, r := range runs {
		resp.Runs = append(resp.Runs, *r)
	}
	fields["returned"] = len(resp.Runs)
	fields["total"] = tally.Total
	return resp, nil
}
