package errs

import "errors"

// Sentinels shared by the query and command sides.
var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrLoftNotFound     = errors.New("loft not found")
	ErrForbidden        = errors.New("operation not permitted for this user")
)
