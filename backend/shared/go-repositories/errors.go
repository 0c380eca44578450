package repositories

import "errors"

var (
	// ErrNotFound is returned by updates against an id that is not stored.
	// Reads signal absence with a nil result instead.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateID    = errors.New("record with this id already exists")
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrImmutableID    = errors.New("record id cannot be changed")
)
