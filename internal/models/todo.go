package models

import "time"

// Todo represents a single to-do item.
// Description is optional; the empty string means the item has none.
type Todo struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoStats holds the aggregate counts shown next to the list.
// Pending is always Total - Completed.
type TodoStats struct {
	Total     int
	Completed int
	Pending   int
}
