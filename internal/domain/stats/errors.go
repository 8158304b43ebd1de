package stats

import "errors"

// Sentinel kinds for aggregation errors.
var (
	// ErrNoMatches reports a tournament row with a zero match count,
	// which would make its goals-per-match average undefined.
	ErrNoMatches = errors.New("tournament has no matches")
)
