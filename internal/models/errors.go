package models

import "errors"

// ErrNotFound indicates that no todo exists with the requested id.
// Lookups by id return it as a normal outcome; callers check for it
// with errors.Is rather than treating it as a failure.
var ErrNotFound = errors.New("todo not found")
