package cell

import "errors"

var (
	// ErrBadRef indicates a slot index that this heap never handed out.
	ErrBadRef = errors.New("cell: bad slot reference")

	// ErrStale indicates a handle whose slot was released after the handle
	// was created. Only reported by heaps built WithGenerations.
	ErrStale = errors.New("cell: stale handle")
)
