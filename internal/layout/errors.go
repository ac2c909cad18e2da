package layout

import "errors"

var (
	// ErrNotFound reports an operation against an id or index absent from
	// the current arrangement. Usually a stale UI reference; callers
	// recover by ignoring the operation.
	ErrNotFound = errors.New("layout: not found")

	// ErrDuplicateType reports an add of a type already on the dashboard.
	ErrDuplicateType = errors.New("layout: widget type already present")

	// ErrViewMode reports a mutation attempted outside edit mode.
	ErrViewMode = errors.New("layout: not in edit mode")
)
