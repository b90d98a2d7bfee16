package app

import (
	"github.com/thenoetrevino/lista/internal/database"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// Both the web server and the terminal client build one of these around
// a shared repository.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore) *App {
	return &App{
		repo:        repo,
		TodoService: todoservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
