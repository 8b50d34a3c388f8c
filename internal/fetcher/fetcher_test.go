package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"github.com/ubuntu/sunrise-sunset/internal/fetcher"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts []fetcher.Options

		want time.Duration
	}{
		"Default timeout":    {want: constants.DefaultFetchTimeout},
		"Custom timeout":     {opts: []fetcher.Options{fetcher.WithTimeout(time.Second)}, want: time.Second},
		"No timeout":         {opts: []fetcher.Options{fetcher.WithTimeout(0)}, want: 0},
		"Custom HTTP client": {opts: []fetcher.Options{fetcher.WithTimeout(time.Second), fetcher.WithHTTPClient(&http.Client{Timeout: time.Minute})}, want: time.Minute},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := fetcher.New(tc.opts...)
			assert.Equal(t, int64(tc.want), f.Timeout(), "New should configure the expected timeout")
		})
	}
}

func TestFetch(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		serverResponse int
		body           string
		shortBody      bool
		slowServer     bool
		noServer       bool
		cancelled      bool

		wantErr bool
	}{
		"Success":              {serverResponse: http.StatusOK, body: `{"status": "OK"}`},
		"Success with no body": {serverResponse: http.StatusOK},
		"Success on non 200":   {serverResponse: http.StatusNonAuthoritativeInfo, body: `{"status": "OK"}`},
		"Body is not checked":  {serverResponse: http.StatusOK, body: `not json`},

		"Error on no server":         {noServer: true, wantErr: true},
		"Error on not found":         {serverResponse: http.StatusNotFound, body: `{"status": "NOT_FOUND"}`, wantErr: true},
		"Error on server error":      {serverResponse: http.StatusInternalServerError, wantErr: true},
		"Error on bad request":       {serverResponse: http.StatusBadRequest, body: `{"status": "INVALID_REQUEST"}`, wantErr: true},
		"Error on timeout":           {serverResponse: http.StatusOK, slowServer: true, wantErr: true},
		"Error on cancelled context": {serverResponse: http.StatusOK, cancelled: true, wantErr: true},
		"Error on truncated body":    {serverResponse: http.StatusOK, body: `{"status"`, shortBody: true, wantErr: true},
		"Error on non UTF-8 body":    {serverResponse: http.StatusOK, body: "{\"status\": \"\xff\xfe\"}", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.slowServer {
					select {
					case <-time.After(2 * time.Second):
					case <-r.Context().Done():
					}
				}
				if tc.shortBody {
					w.Header().Set("Content-Length", "100")
				}
				w.WriteHeader(tc.serverResponse)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(func() { ts.Close() })
			if tc.noServer {
				ts.Close()
			}

			u, err := url.Parse(ts.URL + "/json?lat=40.7&lng=-74")
			require.NoError(t, err, "Setup: could not parse server URL")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tc.cancelled {
				cancel()
			}

			f := fetcher.New(fetcher.WithTimeout(200 * time.Millisecond))
			got, err := f.Fetch(ctx, u)
			if tc.wantErr {
				require.ErrorIs(t, err, fetcher.ErrFetchFailure, "Fetch should return a fetch failure")
				assert.Nil(t, got, "Fetch should not return a body on error")
				return
			}
			require.NoError(t, err, "Fetch should not return an error")
			assert.Equal(t, tc.body, string(got), "Fetch should return the full body")
		})
	}
}

func TestFetchSendsPlainGet(t *testing.T) {
	t.Parallel()

	reqs := make(chan *http.Request, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(func() { ts.Close() })

	u, err := url.Parse(ts.URL + "/json?lat=40.7&lng=-74")
	require.NoError(t, err, "Setup: could not parse server URL")

	_, err = fetcher.New().Fetch(context.Background(), u)
	require.NoError(t, err, "Fetch should not return an error")

	var got *http.Request
	select {
	case got = <-reqs:
	default:
		require.Fail(t, "Server should have received a request")
	}
	assert.Equal(t, http.MethodGet, got.Method, "Fetch should send a GET request")
	assert.Equal(t, "/json", got.URL.Path, "Fetch should request the API path")
	assert.Equal(t, "lat=40.7&lng=-74", got.URL.RawQuery, "Fetch should send the coordinates verbatim")
	assert.Empty(t, got.Header.Get("Authorization"), "Fetch should not authenticate")
	assert.Equal(t, int64(0), got.ContentLength, "Fetch should not send a body")
}
