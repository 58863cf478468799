// Package sqlite persists activities and goals and serves the aggregate
// queries the calculation core consumes (window sums, category groupings,
// daily series, streak days, leaderboard totals).
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	db *sql.DB
}

// Open creates or opens the database file inside dir and applies migrations.
func Open(dir string) (*DB, error) {
	path := filepath.Join(dir, "ecotrack.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; the pure-Go driver serializes access anyway.
	conn.SetMaxOpenConns(1)

	db := &DB{db: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.db.Close()
}

// migrate applies all schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func (db *DB) migrate() error {
	for _, stmt := range Migrations() {
		if _, err := db.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Migrations returns the schema migration statements.
func Migrations() []string {
	return []string{
		// Logged activities with their derived footprint
		`CREATE TABLE IF NOT EXISTS activities (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL,
			name             TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			category         TEXT NOT NULL,
			quantity_value   REAL NOT NULL,
			quantity_unit    TEXT NOT NULL,
			details_json     TEXT NOT NULL DEFAULT '{}',
			carbon_footprint REAL NOT NULL DEFAULT 0,
			emission_factor  REAL NOT NULL DEFAULT 0,
			logged_at        TEXT NOT NULL,
			created_at       TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at       TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_user_date ON activities(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_user_category ON activities(user_id, category)`,

		// Emission goals (both variants share one shape)
		`CREATE TABLE IF NOT EXISTS goals (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			variant    TEXT NOT NULL,
			category   TEXT NOT NULL DEFAULT 'all',
			start_date TEXT NOT NULL,
			end_date   TEXT NOT NULL,
			baseline   REAL NOT NULL DEFAULT 0,
			target     REAL NOT NULL DEFAULT 0,
			status     TEXT NOT NULL DEFAULT 'active',
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user_variant ON goals(user_id, variant, status)`,
	}
}
