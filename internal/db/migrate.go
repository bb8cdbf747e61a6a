package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	// Single-row table holding the in-flight session. The row is replaced
	// on every save and deleted once the assessment completes.
	`CREATE TABLE IF NOT EXISTS session_snapshots (
		id             TEXT PRIMARY KEY CHECK(id = 'current'),
		schema_version INTEGER NOT NULL DEFAULT 1,
		payload        TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessments (
		id             TEXT PRIMARY KEY,
		industry       TEXT NOT NULL,
		company_size   TEXT NOT NULL,
		employee_count INTEGER,
		annual_revenue REAL,
		region         TEXT,
		total_score    INTEGER NOT NULL,
		maturity_level TEXT NOT NULL,
		answers        TEXT NOT NULL,
		result         TEXT NOT NULL,
		completed_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_completed ON assessments(completed_at)`,
}
