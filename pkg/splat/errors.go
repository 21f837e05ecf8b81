package splat

import "errors"

// PLY load errors. Every error returned by this package wraps exactly one of
// these, so callers can tell them apart with errors.Is.
var (
	ErrReadPLY              = errors.New("reading PLY file")
	ErrInvalidPLYHeader     = errors.New("invalid PLY header")
	ErrUnknownPLYFormat     = errors.New("unknown PLY format")
	ErrUnsupportedPLYFormat = errors.New("unsupported PLY format")
	ErrTruncatedPLYData     = errors.New("truncated PLY data")
)
