package domain

import "time"

// Reading is one classification result: a movement label and a heart-rate-like scalar.
type Reading struct {
	Label      ActivityLabel
	HeartRate  int
	Source     string
	CapturedAt time.Time
}

// AnalysisRun records one executed analysis for the session history.
// Label, HeartRate, Status and MatchKind are empty for no-data runs.
type AnalysisRun struct {
	ID                string
	Body              BodyCategory
	Objective         Objective
	Outcome           RunOutcome
	Label             ActivityLabel
	HeartRate         int
	Status            ActivityStatus
	MatchKind         MatchKind
	MatchedKey        string
	IntensityForecast int
	CreatedAt         time.Time
}
