package advisor

import "github.com/alexanderramin/fitcoach/internal/domain"

// Policy holds the per-objective static values used during resolution.
type Policy struct {
	RepSchemes map[domain.Objective][]string
	Forecasts  map[domain.Objective]int
}

// DefaultPolicy returns the built-in rep schemes and intensity forecasts.
func DefaultPolicy() Policy {
	return Policy{
		RepSchemes: map[domain.Objective][]string{
			domain.ObjectiveStrength: {"5 Sets of 5", "4 Sets of 8", "4 Sets of 6", "3 Sets of 8", "3 Sets of 10"},
			domain.ObjectiveCardio:   {"3 Sets of 15", "3 Sets of 20", "2 Sets of 15", "3 Sets of 12", "3 Sets of 20"},
		},
		Forecasts: map[domain.Objective]int{
			domain.ObjectiveCardio:   75,
			domain.ObjectiveStrength: 45,
		},
	}
}

func (p Policy) clone() Policy {
	out := Policy{
		RepSchemes: make(map[domain.Objective][]string, len(p.RepSchemes)),
		Forecasts:  make(map[domain.Objective]int, len(p.Forecasts)),
	}
	for k, v := range p.RepSchemes {
		out.RepSchemes[k] = append([]string(nil), v...)
	}
	for k, v := range p.Forecasts {
		out.Forecasts[k] = v
	}
	return out
}
