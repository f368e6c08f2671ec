package media

import "errors"

var (
	// ErrNotFound is returned by a Store when no item matches id and owner
	ErrNotFound = errors.New("media item not found")

	// ErrAlreadyExists is returned by a Store when an item would duplicate
	// another item of the same owner
	ErrAlreadyExists = errors.New("media item already exists")
)
