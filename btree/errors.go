package btree

import "errors"

var (
	// ErrInvalidDegree is returned by the constructors when the requested
	// minimum degree cannot form a valid B-tree.
	ErrInvalidDegree = errors.New("btree: minimum degree must be at least 2")

	// ErrNilCompare is returned by NewFunc when no comparison function is
	// supplied.
	ErrNilCompare = errors.New("btree: compare function must not be nil")
)
