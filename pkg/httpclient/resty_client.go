package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// Upstream sites reject unidentified clients, so present as a browser.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// DefaultTimeout bounds a single fetch including all redirect hops.
	DefaultTimeout = 8 * time.Second

	// maxRedirectHops caps manual redirect following. Trusted upstreams
	// should never chain this deep; beyond it we fail with
	// ErrTooManyRedirects instead of looping.
	maxRedirectHops = 5
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
// Redirects are followed manually so the hop count stays bounded and the
// Location target is re-requested with the same headers.
type RestyClient struct {
	client       *resty.Client
	maxRedirects int
}

// NewRestyClient creates a RestyClient with the specified timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", defaultUserAgent)
	c.SetHeader("Accept", "text/html,application/xhtml+xml")
	// Hand redirect responses back untouched; GetText drives the hops.
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	return &RestyClient{client: c, maxRedirects: maxRedirectHops}
}

// GetText fetches the document at url, following up to maxRedirects 3xx
// hops, and returns the body of the terminal 2xx response.
func (r *RestyClient) GetText(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	target := rawURL

	for hop := 0; ; hop++ {
		if hop > r.maxRedirects {
			return "", ErrTooManyRedirects
		}

		req := r.client.R().SetContext(ctx)
		if len(headers) > 0 {
			req.SetHeaders(headers)
		}

		resp, err := req.Get(target)
		if err != nil {
			return "", classifyTransport(err)
		}

		code := resp.StatusCode()
		switch {
		case code >= 300 && code < 400:
			loc := resp.Header().Get("Location")
			if loc == "" {
				return "", &StatusError{Code: code}
			}
			next, err := resolveLocation(target, loc)
			if err != nil {
				return "", &StatusError{Code: code}
			}
			target = next
		case code >= 200 && code < 300:
			return resp.String(), nil
		default:
			return "", &StatusError{Code: code}
		}
	}
}

// resolveLocation resolves a possibly-relative Location header against the
// request URL.
func resolveLocation(base, location string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(ref).String(), nil
}

// classifyTransport splits timeouts from other network-level failures.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return ErrTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}
	return &TransportError{Err: err}
}
