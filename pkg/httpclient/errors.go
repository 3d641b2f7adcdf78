package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout reports that the in-flight request exceeded its deadline.
	ErrTimeout = errors.New("http fetch timed out")

	// ErrTooManyRedirects reports that the redirect hop cap was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// TransportError wraps a network-level failure (DNS, connect, TLS, reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a terminal non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}
