// Package storage persists solver learning state in SQLite.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS oll_metrics (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id     TEXT NOT NULL,
	attempt        INTEGER NOT NULL,
	case_id        INTEGER NOT NULL DEFAULT 0,
	classification TEXT NOT NULL,
	pre_pattern    TEXT NOT NULL,
	post_pattern   TEXT NOT NULL,
	improved       INTEGER NOT NULL,
	completed      INTEGER NOT NULL,
	integrity_ok   INTEGER NOT NULL,
	source         TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_oll_metrics_session ON oll_metrics(session_id);

CREATE TABLE IF NOT EXISTS derived_patterns (
	pattern    TEXT PRIMARY KEY,
	algorithm  TEXT NOT NULL,
	source     TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS classification_overrides (
	case_id        INTEGER PRIMARY KEY,
	classification TEXT NOT NULL,
	reason         TEXT NOT NULL DEFAULT '',
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS runtime_finishers (
	pattern   TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS unknown_patterns (
	pattern      TEXT PRIMARY KEY,
	sample_state TEXT NOT NULL,
	score        INTEGER NOT NULL,
	attempt      INTEGER NOT NULL,
	occurrences  INTEGER NOT NULL DEFAULT 1,
	first_seen   TEXT NOT NULL,
	last_seen    TEXT NOT NULL
);
`

// DB wraps the SQLite handle and implements ollsolve.Store.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}
