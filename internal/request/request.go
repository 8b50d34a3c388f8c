// Package request builds the URL queried for the solar events of the configured location.
package request

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ubuntu/sunrise-sunset/internal/constants"
)

var (
	// ErrMissingDefault is returned when the configuration has no default section.
	ErrMissingDefault = errors.New("no default section in configuration")
	// ErrIncompleteDefault is returned when the default section of the configuration lacks some keys.
	ErrIncompleteDefault = errors.New("incomplete default section in configuration")
	// ErrInvalidURL is returned when the built URL is not a valid absolute URL.
	ErrInvalidURL = errors.New("invalid URL")
)

// Config is the configuration of the location to query.
type Config struct {
	Default *Coordinates `mapstructure:"default"`
}

// Coordinates is the location to query, the API to query it from and where to write the results.
type Coordinates struct {
	BaseURL string  `mapstructure:"base_url" toml:"base_url"`
	Lat     float64 `mapstructure:"lat" toml:"lat"`
	Lng     float64 `mapstructure:"lng" toml:"lng"`
	Output  string  `mapstructure:"output" toml:"output"`
}

// Build returns the URL of the API for the coordinates of the default section of cfg.
//
// The base URL is used verbatim, followed by the API path and the coordinates as a query.
// Coordinates are not range checked.
func Build(cfg Config) (*url.URL, error) {
	if cfg.Default == nil {
		return nil, ErrMissingDefault
	}
	c := cfg.Default

	raw := fmt.Sprintf("%s%s?lat=%s&lng=%s", c.BaseURL, constants.APIPath, formatCoordinate(c.Lat), formatCoordinate(c.Lng))
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, raw)
	}

	return u, nil
}

// formatCoordinate returns the shortest decimal representation of v, without exponent.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
