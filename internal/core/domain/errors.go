package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDataRoot indicates the project data root is missing or
	// not a directory. This is a configuration error reported once at
	// build time, never per request.
	ErrInvalidDataRoot = errors.New("invalid data root")

	// ErrInvalidProject indicates the project descriptor could not be
	// parsed or names no data location.
	ErrInvalidProject = errors.New("invalid project descriptor")

	// ErrUnsafePathComponent indicates a collection ID or file name
	// contains path separators or parent-directory sequences.
	ErrUnsafePathComponent = errors.New("unsafe path component")
)
