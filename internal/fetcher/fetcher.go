// Package fetcher implements the fetch client.
// The fetch client is responsible for retrieving the raw response of the sunrise sunset API.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
)

// ErrFetchFailure is returned when the response could not be retrieved, either due to a network error,
// a non-2xx status code or an unreadable body.
var ErrFetchFailure = errors.New("fetch failed")

// Fetcher is an abstraction of the fetch client.
type Fetcher struct {
	client *http.Client
}

type options struct {
	timeout time.Duration

	// Private members exported for tests.
	client *http.Client
}

// Options represents an optional function to override Fetcher default values.
type Options func(*options)

// WithTimeout sets how long a request may take, reading the body included. Zero means no timeout.
func WithTimeout(d time.Duration) Options {
	return func(o *options) {
		o.timeout = d
	}
}

// New returns a new Fetcher.
func New(args ...Options) Fetcher {
	opts := options{
		timeout: constants.DefaultFetchTimeout,
	}
	for _, opt := range args {
		opt(&opts)
	}

	client := opts.client
	if client == nil {
		client = &http.Client{Timeout: opts.timeout}
	}

	return Fetcher{client: client}
}

// Fetch sends a single GET request to u and returns the response body.
//
// It is not retried. Any failure is joined with ErrFetchFailure.
func (f Fetcher) Fetch(ctx context.Context, u *url.URL) (body []byte, err error) {
	defer decorate.OnError(&err, "could not fetch %s", u.Redacted())

	slog.Debug("Sending request", "url", u.Redacted())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailure, fmt.Errorf("failed to create request: %v", err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailure, fmt.Errorf("failed to send HTTP request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Join(ErrFetchFailure, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailure, fmt.Errorf("failed to read response body: %v", err))
	}
	if !utf8.Valid(body) {
		return nil, errors.Join(ErrFetchFailure, errors.New("response body is not valid UTF-8 text"))
	}
	slog.Debug("Received response", "status", resp.StatusCode, "bytes", len(body))

	return body, nil
}
