package provider

import "errors"

// Sentinel kinds for provider errors.
var (
	ErrFetch  = errors.New("season stats fetch failed")
	ErrDecode = errors.New("season stats decode failed")
)
