package service

import (
	"context"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/app"
)

type catalogService struct {
	resolver *advisor.Resolver
}

func NewCatalogService(resolver *advisor.Resolver) CatalogService {
	return &catalogService{resolver: resolver}
}

// Plans lists the knowledge base in table order, each entry paired with the
// rep scheme and forecast of its own objective.
func (s *catalogService) Plans(_ context.Context) ([]app.PlanEntry, error) {
	policy := s.resolver.Policy()
	entries := s.resolver.Base().Entries()
	out := make([]app.PlanEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, app.PlanEntry{
			Entry:     e,
			RepScheme: advisor.SelectRepScheme(policy, e.Key.Objective, len(e.Record.Exercises)),
			Forecast:  advisor.IntensityForecast(policy, e.Key.Objective),
		})
	}
	return out, nil
}
