package ranking

import "errors"

// Error values for consistent error handling by callers.
var (
	ErrInvalidConfig   = errors.New("invalid ranking config")
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page size must be >= 1")
)
