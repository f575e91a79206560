package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Statements are
// idempotent (IF NOT EXISTS) so the whole list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS judges (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		court_room  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cases (
		id                 TEXT PRIMARY KEY,
		case_number        TEXT NOT NULL UNIQUE,
		title              TEXT NOT NULL,
		complexity         TEXT NOT NULL
		                   CHECK(complexity IN ('simple','moderate','complex','highly_complex')),
		status             TEXT NOT NULL DEFAULT 'pending'
		                   CHECK(status IN ('pending','scheduled','in_progress','completed','adjourned')),
		priority_score     INTEGER NOT NULL DEFAULT 0,
		judge_id           TEXT REFERENCES judges(id),
		filed_at           TEXT NOT NULL,
		scheduled_date     TEXT,
		scheduled_time     TEXT,
		estimated_duration INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cases_judge_status ON cases(judge_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_cases_status ON cases(status)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id           TEXT PRIMARY KEY,
		judge_id     TEXT NOT NULL REFERENCES judges(id),
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		is_available INTEGER NOT NULL DEFAULT 0,
		case_id      TEXT REFERENCES cases(id),
		notes        TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_judge_date ON bookings(judge_id, date)`,

	`CREATE TABLE IF NOT EXISTS hearings (
		id             TEXT PRIMARY KEY,
		case_id        TEXT NOT NULL REFERENCES cases(id),
		hearing_number INTEGER NOT NULL,
		scheduled_date TEXT NOT NULL,
		scheduled_time TEXT NOT NULL,
		duration_min   INTEGER NOT NULL,
		status         TEXT NOT NULL DEFAULT 'scheduled',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		UNIQUE(case_id, hearing_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hearings_case ON hearings(case_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
