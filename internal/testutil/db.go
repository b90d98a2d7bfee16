package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// An in-memory database exists per connection, so the pool must
	// stay at one connection or queries land in empty databases.
	db.SetMaxOpenConns(1)

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestSchema creates the database schema for testing. It mirrors
// the migrations the real database runs on startup.
func createTestSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);
	`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// SetupTestRepo creates an in-memory database and wraps it in a
// Repository ready for use.
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// CreateTestTodo inserts a todo through the repository and returns it
func CreateTestTodo(t *testing.T, repo *database.Repository, title, description string) *models.Todo {
	t.Helper()
	todo, err := repo.CreateTodo(context.Background(), title, description)
	if err != nil {
		t.Fatalf("Failed to create test todo %q: %v", title, err)
	}
	return todo
}

// CreateCompletedTestTodo inserts a todo and toggles it to completed
func CreateCompletedTestTodo(t *testing.T, repo *database.Repository, title, description string) *models.Todo {
	t.Helper()
	todo := CreateTestTodo(t, repo, title, description)
	completed, err := repo.ToggleTodo(context.Background(), todo.ID)
	if err != nil {
		t.Fatalf("Failed to complete test todo %q: %v", title, err)
	}
	return completed
}
