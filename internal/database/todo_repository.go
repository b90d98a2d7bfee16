package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/lista/internal/models"
)

// TodoRepo provides data access for todos.
type TodoRepo struct {
	db *sqlx.DB
}

// todoRow mirrors the todos table. Timestamps stay strings here and are
// parsed in toModel, keeping the storage layout in one place.
type todoRow struct {
	ID          int            `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   string         `db:"created_at"`
	UpdatedAt   string         `db:"updated_at"`
}

func (row todoRow) toModel() (*models.Todo, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for todo %d: %w", row.ID, err)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at for todo %d: %w", row.ID, err)
	}
	return &models.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: nullStringToString(row.Description),
		Completed:   row.Completed,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

const selectTodo = `SELECT id, title, description, completed, created_at, updated_at FROM todos`

// getTodo fetches one todo through the given queryer, so it works both
// on the connection and inside a transaction. Missing ids map to
// models.ErrNotFound.
func getTodo(ctx context.Context, q sqlx.QueryerContext, id int) (*models.Todo, error) {
	var row todoRow
	err := sqlx.GetContext(ctx, q, &row, selectTodo+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return row.toModel()
}

// Create inserts a new todo and returns the stored row. Both timestamps
// are stamped with the same creation instant and completed starts false.
func (r *TodoRepo) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	var created *models.Todo
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		now := formatTime(time.Now())
		result, err := tx.ExecContext(ctx,
			`INSERT INTO todos (title, description, completed, created_at, updated_at)
			 VALUES (?, ?, 0, ?, ?)`,
			title, stringToNullString(description), now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read new todo id: %w", err)
		}

		created, err = getTodo(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetAll retrieves every todo, newest first.
func (r *TodoRepo) GetAll(ctx context.Context) ([]*models.Todo, error) {
	return r.list(ctx, selectTodo+` ORDER BY created_at DESC, id DESC`)
}

// GetCompleted retrieves completed todos, most recently updated first.
func (r *TodoRepo) GetCompleted(ctx context.Context) ([]*models.Todo, error) {
	return r.list(ctx, selectTodo+` WHERE completed = 1 ORDER BY updated_at DESC, id DESC`)
}

// GetPending retrieves todos that are not completed yet, newest first.
func (r *TodoRepo) GetPending(ctx context.Context) ([]*models.Todo, error) {
	return r.list(ctx, selectTodo+` WHERE completed = 0 ORDER BY created_at DESC, id DESC`)
}

func (r *TodoRepo) list(ctx context.Context, query string) ([]*models.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]*models.Todo, 0, len(rows))
	for _, row := range rows {
		todo, err := row.toModel()
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// GetByID retrieves a single todo, or models.ErrNotFound.
func (r *TodoRepo) GetByID(ctx context.Context, id int) (*models.Todo, error) {
	return getTodo(ctx, r.db, id)
}

// Update overwrites the fields for which a non-nil value was supplied
// and refreshes updated_at. The read-modify-write runs in one
// transaction and the stored row is returned.
func (r *TodoRepo) Update(ctx context.Context, id int, title, description *string, completed *bool) (*models.Todo, error) {
	var updated *models.Todo
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := getTodo(ctx, tx, id)
		if err != nil {
			return err
		}

		if title != nil {
			current.Title = *title
		}
		if description != nil {
			current.Description = *description
		}
		if completed != nil {
			current.Completed = *completed
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE todos
			 SET title = ?, description = ?, completed = ?, updated_at = ?
			 WHERE id = ?`,
			current.Title, stringToNullString(current.Description), current.Completed,
			formatTime(time.Now()), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update todo %d: %w", id, err)
		}

		updated, err = getTodo(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Toggle flips the completed flag and refreshes updated_at, returning
// the stored row. Missing ids map to models.ErrNotFound.
func (r *TodoRepo) Toggle(ctx context.Context, id int) (*models.Todo, error) {
	var toggled *models.Todo
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := getTodo(ctx, tx, id)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE todos SET completed = ?, updated_at = ? WHERE id = ?`,
			!current.Completed, formatTime(time.Now()), id,
		)
		if err != nil {
			return fmt.Errorf("failed to toggle todo %d: %w", id, err)
		}

		toggled, err = getTodo(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// Delete removes a todo. It reports whether a row was actually removed,
// so deleting an id twice yields false the second time.
func (r *TodoRepo) Delete(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete todo %d: %w", id, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}

		deleted = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
