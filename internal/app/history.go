package app

import "github.com/alexanderramin/fitcoach/internal/domain"

type HistoryRequest struct {
	Limit int // <= 0 uses the configured default
}

// HistorySummary covers every run of the session, not only the listed ones.
type HistorySummary struct {
	Total     int
	Completed int
	NoData    int
	Sedentary int
	Active    int
}

type HistoryResponse struct {
	Runs    []domain.AnalysisRun
	Summary HistorySummary
}
