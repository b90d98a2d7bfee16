package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrTitleTooLong       = errors.New("todo title cannot exceed 200 characters")
	ErrDescriptionTooLong = errors.New("todo description cannot exceed 1000 characters")
	ErrInvalidTodoID      = errors.New("invalid todo ID")
)
