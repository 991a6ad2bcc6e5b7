package app

import "errors"

// Sentinel kinds for runner configuration errors.
var (
	ErrNoProvider = errors.New("runner has no provider")
	ErrNoStore    = errors.New("runner has no store")
)
