package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// timeLayout is the storage format for timestamps. Every field is
// zero-padded to a fixed width so that string comparison in ORDER BY
// matches chronological order, and the nine fractional digits make the
// round trip through the database exact.
const timeLayout = "2006-01-02 15:04:05.000000000"

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// formatTime renders a timestamp in the storage layout. Timestamps are
// always stored in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp back into a UTC time.Time.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNullString converts a string to sql.NullString,
// mapping the empty string to NULL.
func stringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
