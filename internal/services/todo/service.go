package todo

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	GetAllTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodoByID(ctx context.Context, id int) (*models.Todo, error)
	GetCompletedTodos(ctx context.Context) ([]*models.Todo, error)
	GetPendingTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodoStats(ctx context.Context) (models.TodoStats, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	ToggleTodo(ctx context.Context, id int) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) (bool, error)
}

// CreateTodoRequest encapsulates all data needed to create a todo
type CreateTodoRequest struct {
	Title       string
	Description string
}

// UpdateTodoRequest encapsulates all data needed to update a todo.
// Fields with pointers are optional - nil means don't update.
type UpdateTodoRequest struct {
	ID          int
	Title       *string
	Description *string
	Completed   *bool
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new todo service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateTodo handles todo creation with validation
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	todo, err := s.repo.CreateTodo(ctx, req.Title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo handles partial updates with validation. Only the fields
// carried as non-nil pointers are touched.
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidTodoID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateTodo(ctx, req.ID, req.Title, req.Description, req.Completed)
}

// ToggleTodo flips a todo between pending and completed
func (s *service) ToggleTodo(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}

	return s.repo.ToggleTodo(ctx, id)
}

// DeleteTodo removes a todo and reports whether it existed
func (s *service) DeleteTodo(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidTodoID
	}

	return s.repo.DeleteTodo(ctx, id)
}

// GetAllTodos retrieves every todo, newest first
func (s *service) GetAllTodos(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetAllTodos(ctx)
}

// GetTodoByID retrieves a single todo
func (s *service) GetTodoByID(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}

	return s.repo.GetTodoByID(ctx, id)
}

// GetCompletedTodos retrieves completed todos, most recently finished first
func (s *service) GetCompletedTodos(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetCompletedTodos(ctx)
}

// GetPendingTodos retrieves todos that still need doing
func (s *service) GetPendingTodos(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.GetPendingTodos(ctx)
}

// GetTodoStats counts todos by walking the full list, so the numbers
// always agree with what a listing would show.
func (s *service) GetTodoStats(ctx context.Context) (models.TodoStats, error) {
	todos, err := s.repo.GetAllTodos(ctx)
	if err != nil {
		return models.TodoStats{}, fmt.Errorf("failed to load todos for stats: %w", err)
	}

	stats := models.TodoStats{Total: len(todos)}
	for _, todo := range todos {
		if todo.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}

// validateTitle enforces the title length limit. Empty titles are
// accepted here; surfaces that want to require one do so themselves.
func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > maxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// validateDescription enforces the description length limit
func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}
