package service

import "github.com/alexanderramin/fitcoach/internal/app"

type AnalysisService interface {
	app.AnalyzeUseCase
}

type HistoryService interface {
	app.HistoryUseCase
}

type CatalogService interface {
	app.CatalogUseCase
}
