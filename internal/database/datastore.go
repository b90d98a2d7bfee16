package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// TodoReader covers the query side of the store.
type TodoReader interface {
	GetAllTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodoByID(ctx context.Context, id int) (*models.Todo, error)
	GetCompletedTodos(ctx context.Context) ([]*models.Todo, error)
	GetPendingTodos(ctx context.Context) ([]*models.Todo, error)
}

// TodoWriter covers the mutating side of the store. Every method runs
// in its own transaction.
type TodoWriter interface {
	CreateTodo(ctx context.Context, title, description string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, title, description *string, completed *bool) (*models.Todo, error)
	ToggleTodo(ctx context.Context, id int) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) (bool, error)
}

// DataStore is what the service layer programs against.
type DataStore interface {
	TodoReader
	TodoWriter
}
