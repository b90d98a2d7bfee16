package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/lista/internal/models"
)

// Repository bundles the todo data access behind one value. The service
// layer depends on the DataStore interface; this is the concrete
// implementation handed out by the launcher.
type Repository struct {
	todos *TodoRepo
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		todos: &TodoRepo{db: db},
	}
}

func (r *Repository) CreateTodo(ctx context.Context, title, description string) (*models.Todo, error) {
	return r.todos.Create(ctx, title, description)
}

func (r *Repository) GetAllTodos(ctx context.Context) ([]*models.Todo, error) {
	return r.todos.GetAll(ctx)
}

func (r *Repository) GetTodoByID(ctx context.Context, id int) (*models.Todo, error) {
	return r.todos.GetByID(ctx, id)
}

func (r *Repository) UpdateTodo(ctx context.Context, id int, title, description *string, completed *bool) (*models.Todo, error) {
	return r.todos.Update(ctx, id, title, description, completed)
}

func (r *Repository) ToggleTodo(ctx context.Context, id int) (*models.Todo, error) {
	return r.todos.Toggle(ctx, id)
}

func (r *Repository) DeleteTodo(ctx context.Context, id int) (bool, error) {
	return r.todos.Delete(ctx, id)
}

func (r *Repository) GetCompletedTodos(ctx context.Context) ([]*models.Todo, error) {
	return r.todos.GetCompleted(ctx)
}

func (r *Repository) GetPendingTodos(ctx context.Context) ([]*models.Todo, error) {
	return r.todos.GetPending(ctx)
}

// Reset drops every todo and rebuilds the schema. It exists for test
// setup and teardown and is deliberately not part of DataStore, so
// production callers never see it.
func (r *Repository) Reset(ctx context.Context) error {
	if _, err := r.todos.db.ExecContext(ctx, `DROP TABLE IF EXISTS todos`); err != nil {
		return fmt.Errorf("failed to drop todos table: %w", err)
	}
	return runMigrations(ctx, r.todos.db)
}
