package domain

import "errors"

// Storage-level sentinels shared by repository implementations.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNoRowsAffected = errors.New("no rows affected")
)
