package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/lista/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Each pooled connection would get its own empty in-memory
	// database, so the pool must stay at one connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestTodo inserts a todo through the repository and fails the
// test on error.
func createTestTodo(t *testing.T, repo *Repository, title, description string) *models.Todo {
	t.Helper()
	todo, err := repo.CreateTodo(context.Background(), title, description)
	if err != nil {
		t.Fatalf("Failed to create test todo %q: %v", title, err)
	}
	return todo
}
