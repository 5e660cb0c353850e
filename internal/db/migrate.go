package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id                 TEXT PRIMARY KEY,
		body               TEXT NOT NULL,
		objective          TEXT NOT NULL CHECK(objective IN ('cardio','strength')),
		outcome            TEXT NOT NULL CHECK(outcome IN ('completed','no_data')),
		label              TEXT NOT NULL DEFAULT '',
		heart_rate         INTEGER NOT NULL DEFAULT 0 CHECK(heart_rate >= 0),
		status             TEXT NOT NULL DEFAULT '' CHECK(status IN ('','Sedentary','Active')),
		match_kind         TEXT NOT NULL DEFAULT '',
		matched_key        TEXT NOT NULL DEFAULT '',
		intensity_forecast INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_runs_created ON analysis_runs(created_at)`,
}
