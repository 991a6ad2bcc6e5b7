package store

import "errors"

// Sentinel kinds for store errors.
var (
	ErrWrite = errors.New("csv write failed")
)
