// Package pipeline runs the whole sunrise sunset retrieval once: it builds the request, fetches the
// response, normalizes it and writes it out.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"github.com/ubuntu/sunrise-sunset/internal/fetcher"
	"github.com/ubuntu/sunrise-sunset/internal/models"
	"github.com/ubuntu/sunrise-sunset/internal/payload"
	"github.com/ubuntu/sunrise-sunset/internal/request"
	"github.com/ubuntu/sunrise-sunset/internal/writer"
)

// Fetcher retrieves the raw body behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) ([]byte, error)
}

// Pipeline is a configured run.
type Pipeline struct {
	cfg     request.Config
	fetcher Fetcher
	dryRun  bool
	out     io.Writer
	logger  *slog.Logger
}

type options struct {
	timeout time.Duration
	dryRun  bool
	out     io.Writer

	// Private members exported for tests.
	fetcher Fetcher
	logger  *slog.Logger
}

// Options represents an optional function to override Pipeline default values.
type Options func(*options)

// WithDryRun prints the output document instead of writing it when dryRun is true.
func WithDryRun(dryRun bool) Options {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithOutput sets where the output document is printed on dry runs. It defaults to stdout.
func WithOutput(w io.Writer) Options {
	return func(o *options) {
		o.out = w
	}
}

// WithTimeout sets the timeout of the API request.
func WithTimeout(d time.Duration) Options {
	return func(o *options) {
		o.timeout = d
	}
}

// New returns a Pipeline for cfg. cfg is read only.
func New(cfg request.Config, args ...Options) Pipeline {
	opts := options{
		timeout: constants.DefaultFetchTimeout,
		out:     os.Stdout,
		logger:  slog.Default(),
	}
	for _, opt := range args {
		opt(&opts)
	}

	f := opts.fetcher
	if f == nil {
		f = fetcher.New(fetcher.WithTimeout(opts.timeout))
	}

	return Pipeline{
		cfg:     cfg,
		fetcher: f,
		dryRun:  opts.dryRun,
		out:     opts.out,
		logger:  opts.logger,
	}
}

// Run executes each stage in order and stops at the first failure, which is returned as a *StageError.
// Nothing is written unless every previous stage succeeded.
func (p Pipeline) Run(ctx context.Context) error {
	log := p.logger.With("run", uuid.NewString())
	fail := func(stage Stage, err error) error {
		log.Error("Run failed", "stage", stage, "error", err)
		return &StageError{Stage: stage, Err: err}
	}

	u, err := request.Build(p.cfg)
	if errors.Is(err, request.ErrMissingDefault) {
		return fail(StageConfig, err)
	} else if err != nil {
		return fail(StageURL, err)
	}
	log.Info("Built request URL", "url", u.Redacted())

	body, err := p.fetcher.Fetch(ctx, u)
	if err != nil {
		return fail(StageFetch, err)
	}
	log.Info("Fetched response", "bytes", len(body))

	resp, err := decode(body)
	if err != nil {
		return fail(StageDecode, err)
	}
	log.Info("Decoded response", "status", resp.Status, "date", resp.Results.Date)

	if p.dryRun {
		data, err := writer.Marshal(resp)
		if err != nil {
			return fail(StageWrite, err)
		}
		if _, err := p.out.Write(data); err != nil {
			return fail(StageWrite, fmt.Errorf("could not print output: %v", err))
		}
		log.Info("Dry run, not writing output", "file", p.cfg.Default.Output)
		return nil
	}

	if err := writer.Write(p.cfg.Default.Output, resp); err != nil {
		return fail(StageWrite, err)
	}
	log.Info("Output written", "file", p.cfg.Default.Output)

	return nil
}

// decode turns a raw body into a normalized response.
func decode(body []byte) (models.Response, error) {
	doc, err := payload.Parse(body)
	if err != nil {
		return models.Response{}, err
	}
	return payload.Decode(payload.Normalize(doc))
}
