package fetcher

import "net/http"

// WithHTTPClient sets the HTTP client used to send requests, ignoring the timeout option.
func WithHTTPClient(c *http.Client) Options {
	return func(o *options) {
		o.client = c
	}
}

// Timeout returns the timeout of the underlying HTTP client.
func (f Fetcher) Timeout() int64 {
	return int64(f.client.Timeout)
}
