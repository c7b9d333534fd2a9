package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates a search was attempted with no query text.
	ErrEmptyQuery = errors.New("empty query")

	// ErrStoreUnavailable indicates the resume store is not configured.
	ErrStoreUnavailable = errors.New("resume store unavailable")
)
