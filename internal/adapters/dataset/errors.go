package dataset

import "errors"

// Sentinel kinds for load failures. All are fatal on the startup path;
// a process that cannot load its tables cannot serve any query.
var (
	ErrLoad          = errors.New("dataset load failed")
	ErrMissingSource = errors.New("source file missing")
	ErrMissingColumn = errors.New("required column missing")
	ErrMalformedRow  = errors.New("malformed row")
)
