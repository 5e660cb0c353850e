package app

import (
	"context"

	"github.com/alexanderramin/fitcoach/internal/knowledge"
)

type AnalyzeUseCase interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResponse, error)
}

type HistoryUseCase interface {
	History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error)
}

// PlanEntry is one catalog line: a table entry and the sets paired with its
// exercises when requested under its own objective.
type PlanEntry struct {
	Entry     knowledge.Entry
	RepScheme []string
	Forecast  int
}

type CatalogUseCase interface {
	Plans(ctx context.Context) ([]PlanEntry, error)
}
