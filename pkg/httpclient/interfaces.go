package httpclient

import "context"

// Client abstracts document retrieval so callers can inject mocks or
// different transports. GetText returns the body of a terminal 2xx
// response; every failure mode maps onto the package error taxonomy:
// ErrTimeout, ErrTooManyRedirects, *TransportError, *StatusError.
type Client interface {
	GetText(ctx context.Context, url string, headers map[string]string) (string, error)
}
