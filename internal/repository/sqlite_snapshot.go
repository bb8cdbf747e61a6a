package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/metis/internal/db"
	"github.com/alexanderramin/metis/internal/domain"
)

// snapshotSchemaVersion is bumped when the snapshot payload shape changes.
// Rows with an unknown version are treated as absent rather than failing.
const snapshotSchemaVersion = 1

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
// The table holds at most one row, keyed by the fixed id 'current'.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT schema_version, payload FROM session_snapshots WHERE id = 'current'`
	row := r.db.QueryRowContext(ctx, query)

	var version int
	var payload string
	if err := row.Scan(&version, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session snapshot: %w", err)
	}
	if version != snapshotSchemaVersion {
		return nil, fmt.Errorf("session snapshot schema version %d: %w", version, ErrNotFound)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("decoding session snapshot: %w", err)
	}
	return &snap, nil
}

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding session snapshot: %w", err)
	}

	query := `INSERT OR REPLACE INTO session_snapshots (id, schema_version, payload, updated_at)
		VALUES ('current', ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, snapshotSchemaVersion, string(payload), nowUTC()); err != nil {
		return fmt.Errorf("saving session snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_snapshots WHERE id = 'current'`); err != nil {
		return fmt.Errorf("clearing session snapshot: %w", err)
	}
	return nil
}
