package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fitcoach/internal/db"
	"github.com/alexanderramin/fitcoach/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

const runColumns = `id, body, objective, outcome, label, heart_rate, status,
	match_kind, matched_key, intensity_forecast, created_at`

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.AnalysisRun) error {
	query := `INSERT INTO analysis_runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		string(run.Body),
		string(run.Objective),
		string(run.Outcome),
		string(run.Label),
		run.HeartRate,
		string(run.Status),
		string(run.MatchKind),
		run.MatchedKey,
		run.IntensityForecast,
		formatTime(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT ` + runColumns + ` FROM analysis_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analysis runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Tally(ctx context.Context) (RunTally, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT outcome, status, COUNT(*)
		FROM analysis_runs
		GROUP BY outcome, status`)
	if err != nil {
		return RunTally{}, fmt.Errorf("tallying analysis runs: %w", err)
	}
	defer rows.Close()

	var t RunTally
	for rows.Next() {
		var (
			outcome, status string
			n               int
		)
		if err := rows.Scan(&outcome, &status, &n); err != nil {
			return RunTally{}, fmt.Errorf("scanning run tally: %w", err)
		}
		t.Total += n
		switch domain.RunOutcome(outcome) {
		case domain.OutcomeNoData:
			t.NoData += n
		case domain.OutcomeCompleted:
			t.Completed += n
			if domain.ActivityStatus(status) == domain.StatusSedentary {
				t.Sedentary += n
			} else {
				t.Active += n
			}
		}
	}
	if err := rows.Err(); err != nil {
		return RunTally{}, fmt.Errorf("iterating run tally: %w", err)
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.AnalysisRun, error) {
	var (
		run                                               domain.AnalysisRun
		body, objective, outcome, label, status, kind, at string
	)
	err := row.Scan(
		&run.ID, &body, &objective, &outcome, &label, &run.HeartRate, &status,
		&kind, &run.MatchedKey, &run.IntensityForecast, &at,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning analysis run: %w", err)
	}

	run.Body = domain.BodyCategory(body)
	run.Objective = domain.Objective(objective)
	run.Outcome = domain.RunOutcome(outcome)
	run.Label = domain.ActivityLabel(label)
	run.Status = domain.ActivityStatus(status)
	run.MatchKind = domain.MatchKind(kind)
	run.CreatedAt, err = parseTime(at)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &run, nil
}
