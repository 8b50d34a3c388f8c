package pipeline

import "log/slog"

// WithFetcher overrides the fetch client.
func WithFetcher(f Fetcher) Options {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithLogger overrides the logger, which defaults to slog.Default.
func WithLogger(l *slog.Logger) Options {
	return func(o *options) {
		o.logger = l
	}
}
