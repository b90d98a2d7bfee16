//go:build ignore
// +build ignore

// Helper script to add sample todos to the database.
// Run with: go run add_sample_data.go

package main

import (
	"context"
	"log"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/services/todo"
)

func main() {
	ctx := context.Background()

	dbPath, err := database.DefaultPath()
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v", err)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	svc := todo.NewService(database.NewRepository(db))

	samples := []todo.CreateTodoRequest{
		{Title: "Fix auth bug", Description: "Token refresh 401s after an hour. See the `session` middleware."},
		{Title: "Update deps", Description: ""},
		{Title: "Write release notes", Description: "Cover:\n\n- the new filter\n- keyboard changes"},
		{Title: "Review PR #42", Description: ""},
		{Title: "Book dentist appointment", Description: ""},
	}

	for _, req := range samples {
		created, err := svc.CreateTodo(ctx, req)
		if err != nil {
			log.Printf("Error creating todo %q: %v", req.Title, err)
			continue
		}
		log.Printf("Created todo %d: %s", created.ID, created.Title)
	}

	// Mark a couple as done so both partitions have data
	todos, err := svc.GetAllTodos(ctx)
	if err != nil {
		log.Fatalf("Failed to list todos: %v", err)
	}
	for i, t := range todos {
		if i%2 == 1 {
			if _, err := svc.ToggleTodo(ctx, t.ID); err != nil {
				log.Printf("Error toggling todo %d: %v", t.ID, err)
			}
		}
	}

	log.Printf("Done, %d todos in the store", len(todos))
}
