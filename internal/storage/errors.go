package storage

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrConflict is returned when an appointment overlaps an existing one.
	ErrConflict = errors.New("time slot conflict")
)
