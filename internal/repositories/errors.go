package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError wraps unexpected database/driver errors.
	ErrDatabaseError = errors.New("database error")
)
