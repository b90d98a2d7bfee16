package todo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService creates a service backed by an in-memory database
func setupTestService(t *testing.T) Service {
	t.Helper()
	return NewService(testutil.SetupTestRepo(t))
}

// mustCreate creates a todo through the service and fails the test on error
func mustCreate(t *testing.T, svc Service, title, description string) *models.Todo {
	t.Helper()
	todo, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		t.Fatalf("Failed to create todo %q: %v", title, err)
	}
	return todo
}

// ============================================================================
// TEST CASES - CREATE
// ============================================================================

func TestCreateTodo(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	result, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title:       "Write the weekly report",
		Description: "Due Friday morning",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected todo result, got nil")
	}
	if result.Title != "Write the weekly report" {
		t.Errorf("Expected title 'Write the weekly report', got '%s'", result.Title)
	}
	if result.Description != "Due Friday morning" {
		t.Errorf("Expected description 'Due Friday morning', got '%s'", result.Description)
	}
	if result.Completed {
		t.Error("New todo should start pending")
	}
	if result.ID == 0 {
		t.Error("Expected todo ID to be set")
	}
}

func TestCreateTodo_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	// The data layer accepts empty titles; requiring one is left to the
	// surfaces, which trim and reject before calling in.
	result, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Title: ""})

	if err != nil {
		t.Fatalf("Expected empty title to be accepted, got %v", err)
	}
	if result.Title != "" {
		t.Errorf("Expected empty title, got '%s'", result.Title)
	}
}

func TestCreateTodo_TitleAtLimit(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title: strings.Repeat("a", 200),
	})

	if err != nil {
		t.Fatalf("Expected 200-character title to be accepted, got %v", err)
	}
}

func TestCreateTodo_TitleTooLong(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title: strings.Repeat("a", 201),
	})

	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected ErrTitleTooLong, got %v", err)
	}
}

func TestCreateTodo_TitleLimitCountsCharacters(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	// 200 two-byte characters stay within the limit even though the
	// byte length is double it.
	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title: strings.Repeat("é", 200),
	})

	if err != nil {
		t.Fatalf("Expected 200 multibyte characters to be accepted, got %v", err)
	}
}

func TestCreateTodo_DescriptionAtLimit(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title:       "Boundary",
		Description: strings.Repeat("b", 1000),
	})

	if err != nil {
		t.Fatalf("Expected 1000-character description to be accepted, got %v", err)
	}
}

func TestCreateTodo_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{
		Title:       "Boundary",
		Description: strings.Repeat("b", 1001),
	})

	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Errorf("Expected ErrDescriptionTooLong, got %v", err)
	}
}

// ============================================================================
// TEST CASES - READ
// ============================================================================

func TestGetAllTodos_NewestFirst(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	mustCreate(t, svc, "Task 1", "")
	mustCreate(t, svc, "Task 2", "")
	mustCreate(t, svc, "Task 3", "")

	todos, err := svc.GetAllTodos(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(todos) != 3 {
		t.Fatalf("Expected 3 todos, got %d", len(todos))
	}
	want := []string{"Task 3", "Task 2", "Task 1"}
	for i, title := range want {
		if todos[i].Title != title {
			t.Errorf("Position %d: expected '%s', got '%s'", i, title, todos[i].Title)
		}
	}
}

func TestGetTodoByID(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Fetch me", "With details")

	fetched, err := svc.GetTodoByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fetched.ID != created.ID || fetched.Title != "Fetch me" {
		t.Errorf("Fetched wrong todo: %+v", fetched)
	}
}

func TestGetTodoByID_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	for _, id := range []int{0, -1} {
		if _, err := svc.GetTodoByID(context.Background(), id); !errors.Is(err, ErrInvalidTodoID) {
			t.Errorf("ID %d: expected ErrInvalidTodoID, got %v", id, err)
		}
	}
}

func TestGetTodoByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	_, err := svc.GetTodoByID(context.Background(), 999)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - UPDATE
// ============================================================================

func TestUpdateTodo_TitleOnly(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Original title", "Original description")

	newTitle := "Updated title"
	updated, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{
		ID:    created.ID,
		Title: &newTitle,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "Updated title" {
		t.Errorf("Expected title 'Updated title', got '%s'", updated.Title)
	}
	if updated.Description != "Original description" {
		t.Errorf("Description should be preserved, got '%s'", updated.Description)
	}
}

func TestUpdateTodo_CompletedOnly(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Mark me done", "Keep this")

	completed := true
	updated, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{
		ID:        created.ID,
		Completed: &completed,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !updated.Completed {
		t.Error("Expected todo to be completed")
	}
	if updated.Title != "Mark me done" || updated.Description != "Keep this" {
		t.Errorf("Other fields should be preserved: %+v", updated)
	}
}

func TestUpdateTodo_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	title := "Nope"
	_, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{ID: 0, Title: &title})
	if !errors.Is(err, ErrInvalidTodoID) {
		t.Errorf("Expected ErrInvalidTodoID, got %v", err)
	}
}

func TestUpdateTodo_TitleTooLong(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Short", "")

	longTitle := strings.Repeat("a", 201)
	_, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{
		ID:    created.ID,
		Title: &longTitle,
	})

	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected ErrTitleTooLong, got %v", err)
	}
}

func TestUpdateTodo_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Short", "")

	longDescription := strings.Repeat("b", 1001)
	_, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{
		ID:          created.ID,
		Description: &longDescription,
	})

	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Errorf("Expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	title := "Ghost"
	_, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{ID: 999, Title: &title})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - TOGGLE
// ============================================================================

func TestToggleTodo(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Flip me", "")

	toggled, err := svc.ToggleTodo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !toggled.Completed {
		t.Error("Expected completed after first toggle")
	}

	back, err := svc.ToggleTodo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if back.Completed {
		t.Error("Expected pending after second toggle")
	}
}

func TestToggleTodo_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	if _, err := svc.ToggleTodo(context.Background(), -5); !errors.Is(err, ErrInvalidTodoID) {
		t.Errorf("Expected ErrInvalidTodoID, got %v", err)
	}
}

func TestToggleTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	if _, err := svc.ToggleTodo(context.Background(), 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - DELETE
// ============================================================================

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	created := mustCreate(t, svc, "Delete me", "")

	deleted, err := svc.DeleteTodo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !deleted {
		t.Error("Expected true for existing todo")
	}

	deleted, err = svc.DeleteTodo(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error on repeat delete, got %v", err)
	}
	if deleted {
		t.Error("Expected false for already deleted todo")
	}
}

func TestDeleteTodo_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	if _, err := svc.DeleteTodo(context.Background(), 0); !errors.Is(err, ErrInvalidTodoID) {
		t.Errorf("Expected ErrInvalidTodoID, got %v", err)
	}
}

// ============================================================================
// TEST CASES - FILTERED LISTS
// ============================================================================

// TestCompletedAndPendingPartitionAllTodos checks that the two filtered
// lists split the full list cleanly between them.
func TestCompletedAndPendingPartitionAllTodos(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	ctx := context.Background()

	var ids []int
	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		ids = append(ids, mustCreate(t, svc, title, "").ID)
	}
	for _, id := range ids[:2] {
		if _, err := svc.ToggleTodo(ctx, id); err != nil {
			t.Fatalf("Failed to toggle: %v", err)
		}
	}

	all, err := svc.GetAllTodos(ctx)
	if err != nil {
		t.Fatalf("Failed to get all todos: %v", err)
	}
	completed, err := svc.GetCompletedTodos(ctx)
	if err != nil {
		t.Fatalf("Failed to get completed todos: %v", err)
	}
	pending, err := svc.GetPendingTodos(ctx)
	if err != nil {
		t.Fatalf("Failed to get pending todos: %v", err)
	}

	if len(completed) != 2 {
		t.Errorf("Expected 2 completed, got %d", len(completed))
	}
	if len(pending) != 3 {
		t.Errorf("Expected 3 pending, got %d", len(pending))
	}
	if len(completed)+len(pending) != len(all) {
		t.Errorf("Filtered lists do not cover all todos: %d + %d != %d",
			len(completed), len(pending), len(all))
	}

	seen := make(map[int]bool)
	for _, todo := range completed {
		seen[todo.ID] = true
	}
	for _, todo := range pending {
		if seen[todo.ID] {
			t.Errorf("Todo %d appears in both filtered lists", todo.ID)
		}
	}
}

// ============================================================================
// TEST CASES - STATS
// ============================================================================

func TestGetTodoStats(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	ctx := context.Background()

	a := mustCreate(t, svc, "Task A", "")
	b := mustCreate(t, svc, "Task B", "")
	mustCreate(t, svc, "Task C", "")

	for _, id := range []int{a.ID, b.ID} {
		if _, err := svc.ToggleTodo(ctx, id); err != nil {
			t.Fatalf("Failed to toggle: %v", err)
		}
	}

	stats, err := svc.GetTodoStats(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Expected total 3, got %d", stats.Total)
	}
	if stats.Completed != 2 {
		t.Errorf("Expected completed 2, got %d", stats.Completed)
	}
	if stats.Pending != 1 {
		t.Errorf("Expected pending 1, got %d", stats.Pending)
	}
}

// TestGetTodoStats_AfterToggles walks the original three-task scenario:
// completion state changes must show up in the stats without disturbing
// the newest-first ordering, since toggling never touches created_at.
func TestGetTodoStats_AfterToggles(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)
	ctx := context.Background()

	first := mustCreate(t, svc, "Task 1", "")
	mustCreate(t, svc, "Task 2", "")
	third := mustCreate(t, svc, "Task 3", "")

	for _, id := range []int{first.ID, third.ID} {
		if _, err := svc.ToggleTodo(ctx, id); err != nil {
			t.Fatalf("Failed to toggle: %v", err)
		}
	}

	stats, err := svc.GetTodoStats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.Total != 3 || stats.Completed != 2 || stats.Pending != 1 {
		t.Errorf("Expected stats {3 2 1}, got %+v", stats)
	}

	all, err := svc.GetAllTodos(ctx)
	if err != nil {
		t.Fatalf("Failed to get all todos: %v", err)
	}
	want := []string{"Task 3", "Task 2", "Task 1"}
	for i, title := range want {
		if all[i].Title != title {
			t.Errorf("Position %d: expected '%s', got '%s'", i, title, all[i].Title)
		}
	}
}

func TestGetTodoStats_Empty(t *testing.T) {
	t.Parallel()

	svc := setupTestService(t)

	stats, err := svc.GetTodoStats(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Pending != 0 {
		t.Errorf("Expected zeroed stats on empty store, got %+v", stats)
	}
}
