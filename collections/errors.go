package collections

import "errors"

// Sentinel errors returned by container operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the container is empty (Head, Tail, Last, Fold, Reduce).
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	// Negative indices are out of range; there is no negative-indexing
	// shorthand.
	ErrIndexOutOfRange = errors.New("collections: index out of range")
)
