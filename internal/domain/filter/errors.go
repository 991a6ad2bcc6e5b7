package filter

import "errors"

// Sentinel kinds for filter errors.
var (
	ErrMissingColumn = errors.New("required column missing")
)
