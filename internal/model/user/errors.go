package user

import "errors"

var (
	// ErrNotFound is returned when no record carries the requested id
	ErrNotFound = errors.New("user not found")

	// ErrConflict is returned when inserting a record whose id is already stored
	ErrConflict = errors.New("user id already exists")

	// ErrEmpty is returned by a wildcard delete on an empty store
	ErrEmpty = errors.New("no users stored")
)
