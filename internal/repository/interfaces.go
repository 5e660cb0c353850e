package repository

import (
	"context"

	"github.com/alexanderramin/fitcoach/internal/domain"
)

// RunTally counts every run of the session, independent of any listing limit.
type RunTally struct {
	Total     int
	Completed int
	NoData    int
	Sedentary int
	Active    int
}

// RunRepo stores the analysis runs of the current session.
type RunRepo interface {
	Create(ctx context.Context, r *domain.AnalysisRun) error
	// ListRecent returns up to limit runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error)
	Tally(ctx context.Context) (RunTally, error)
}
