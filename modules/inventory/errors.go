package inventory

import "errors"

// Sentinel errors for inventory operations.
var (
	// ErrNotFound is returned when the requested item does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicateID is returned when inserting an item whose id is
	// already present in the store. The store is left unchanged.
	ErrDuplicateID = errors.New("item id already exists")

	// ErrUnknownColumn is returned when a search names a column that
	// is not part of the search registry.
	ErrUnknownColumn = errors.New("unknown search column")
)
