package app

import (
	"context"
	"testing"

	"github.com/thenoetrevino/lista/internal/services/todo"
	"github.com/thenoetrevino/lista/internal/testutil"
)

func TestNew_WiresServices(t *testing.T) {
	repo := testutil.SetupTestRepo(t)

	a := New(repo)

	if a.TodoService == nil {
		t.Fatal("Expected TodoService to be initialized")
	}
	if a.Repo() == nil {
		t.Fatal("Expected repository to be reachable")
	}

	// The service talks to the same store the repo accessor exposes
	created, err := a.TodoService.CreateTodo(context.Background(), todo.CreateTodoRequest{
		Title: "Wired up",
	})
	if err != nil {
		t.Fatalf("Failed to create todo through app: %v", err)
	}

	fetched, err := a.Repo().GetTodoByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to read todo back through repo: %v", err)
	}
	if fetched.Title != "Wired up" {
		t.Errorf("Expected title 'Wired up', got '%s'", fetched.Title)
	}
}

func TestClose(t *testing.T) {
	a := New(testutil.SetupTestRepo(t))
	if err := a.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}
