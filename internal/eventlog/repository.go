// Package eventlog persists notification records to a local SQLite file
// so past game activity survives restarts and can be queried offline.
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is a single persisted notification record
type Entry struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	Payload   string    `json:"payload"` // JSON-encoded event payload
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows entry queries
type Filter struct {
	OwnerID   *string
	EventType *string
	Since     *time.Time
	Limit     int
}

// Repository defines the storage surface for the event log
type Repository interface {
	LogEvent(ctx context.Context, eventType string, ownerID *string, payload string) error
	GetEntries(ctx context.Context, filter Filter) ([]Entry, error)
	CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error)
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS event_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type  TEXT NOT NULL,
	owner_id    TEXT,
	payload     TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_event_log_type ON event_log(event_type);
CREATE INDEX IF NOT EXISTS idx_event_log_owner ON event_log(owner_id);
CREATE INDEX IF NOT EXISTS idx_event_log_created ON event_log(created_at);
`

// SQLiteRepository stores entries in a single-file SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the event log database at path
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("empty event log path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event log dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log db: %w", err)
	}
	// modernc sqlite is not safe for concurrent writers on one file
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA synchronous = NORMAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init event log schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// LogEvent appends one entry
func (r *SQLiteRepository) LogEvent(ctx context.Context, eventType string, ownerID *string, payload string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (event_type, owner_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		eventType, ownerID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert event log entry: %w", err)
	}
	return nil
}

// GetEntries returns entries matching the filter, newest first
func (r *SQLiteRepository) GetEntries(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT id, event_type, owner_id, payload, created_at FROM event_log WHERE 1=1`
	args := []interface{}{}

	if filter.OwnerID != nil {
		query += ` AND owner_id = ?`
		args = append(args, *filter.OwnerID)
	}
	if filter.EventType != nil {
		query += ` AND event_type = ?`
		args = append(args, *filter.EventType)
	}
	if filter.Since != nil {
		query += ` AND created_at >= ?`
		args = append(args, filter.Since.UTC())
	}

	query += ` ORDER BY id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.EventType, &e.OwnerID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CleanupOldEntries deletes entries older than retentionDays and reports
// how many were removed
func (r *SQLiteRepository) CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	res, err := r.db.ExecContext(ctx, `DELETE FROM event_log WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup event log: %w", err)
	}
	return res.RowsAffected()
}

// CheckHealth verifies the database file is still reachable
func (r *SQLiteRepository) CheckHealth(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
