package results

import "errors"

var (
	// ErrNotSupported reports an identifier with no mapped source at all.
	// No network call is attempted for it.
	ErrNotSupported = errors.New("lottery not supported")

	// ErrUnavailable reports that every mapped source failed for this
	// request.
	ErrUnavailable = errors.New("lottery results unavailable")
)
