package cli

import (
	"github.com/alexanderramin/fitcoach/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Profile persists for the whole TUI session.
	Profile Profile

	// Runs counts analyses started this session.
	Runs int

	// Terminal dimensions
	Width  int
	Height int
}

// SetProfile replaces the active profile. Invalid values are ignored so the
// session never holds a category the resolver would reject at parse time.
func (s *SharedState) SetProfile(body domain.BodyCategory, objective domain.Objective) bool {
	if !body.Valid() || !objective.Valid() {
		return false
	}
	s.Profile = Profile{Body: body, Objective: objective}
	return true
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + hints + footer).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
