package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness
// constraint. The database index is the authoritative check; any
// application-level lookup before the insert is only a fast path.
var ErrConflict = errors.New("already exists")
