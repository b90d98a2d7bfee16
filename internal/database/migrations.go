package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// runMigrations creates the database schema if it does not exist yet.
// There is a single table; no further migrations are defined.
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Index for the completed/pending partitions
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todos_completed
		ON todos(completed)
	`)
	if err != nil {
		return err
	}

	return nil
}
