package advisor

import "github.com/alexanderramin/fitcoach/internal/domain"

// ExerciseRow is one line of the prescribed exercise table.
type ExerciseRow struct {
	Exercise string
	Sets     string
}

// SelectRepScheme returns the first n entries of the objective's rep scheme.
// A scheme shorter than n is returned whole.
func SelectRepScheme(p Policy, objective domain.Objective, n int) []string {
	scheme := p.RepSchemes[objective]
	if n > len(scheme) {
		n = len(scheme)
	}
	if n < 0 {
		n = 0
	}
	return append([]string(nil), scheme[:n]...)
}

// IntensityForecast returns the fixed forecast percentage for objective.
func IntensityForecast(p Policy, objective domain.Objective) int {
	return p.Forecasts[objective]
}

func pairRows(exercises, scheme []string) []ExerciseRow {
	rows := make([]ExerciseRow, 0, len(exercises))
	for i, ex := range exercises {
		row := ExerciseRow{Exercise: ex}
		if i < len(scheme) {
			row.Sets = scheme[i]
		}
		rows = append(rows, row)
	}
	return rows
}
