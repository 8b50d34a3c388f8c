// Package payload turns the raw body returned by the sunrise sunset API into a normalized response.
//
// The body is first parsed into a generic Document, so that time fields can be rewritten one
// by one, tolerating missing or malformed ones, before the document is strictly decoded.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ubuntu/decorate"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"github.com/ubuntu/sunrise-sunset/internal/models"
	"github.com/ubuntu/sunrise-sunset/internal/timefmt"
)

const resultsKey = "results"

var (
	// ErrNotObject is returned when a body or the results it contains is not a JSON object.
	ErrNotObject = errors.New("not a JSON object")
	// ErrMissingFields is returned when a document lacks fields required by the response model.
	ErrMissingFields = errors.New("missing required fields")
)

// Document is a JSON object as decoded without a target type.
// Nested objects are map[string]any, arrays []any and numbers json.Number.
type Document map[string]any

// Parse decodes body into a Document. The body must hold exactly one JSON object.
func Parse(body []byte) (doc Document, err error) {
	defer decorate.OnError(&err, "could not parse response body")

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		return nil, fmt.Errorf("invalid JSON: %v", err)
	}
	if doc == nil {
		return nil, ErrNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after the top-level object")
	}

	return doc, nil
}

// Normalize rewrites in place the 12-hour time fields of the results object of doc to 24-hour ones.
//
// Only string values of the fields listed in constants.TimeFields are considered. Those which
// can't be converted are replaced with nil. Any other field, or a doc without a results object,
// is left untouched. The same document is returned.
func Normalize(doc Document) Document {
	results, ok := asObject(doc[resultsKey])
	if !ok {
		slog.Debug("No results object in document, nothing to normalize")
		return doc
	}

	for _, field := range constants.TimeFields {
		v, ok := results[field].(string)
		if !ok {
			continue
		}

		t, ok := timefmt.To24Hour(v)
		if !ok {
			slog.Warn("Could not convert time to 24-hour format, dropping it", "field", field, "value", v)
			results[field] = nil
			continue
		}
		slog.Debug("Converted time to 24-hour format", "field", field, "from", v, "to", t)
		results[field] = t
	}

	return doc
}

// Decode strictly decodes a normalized document into a response.
//
// Every field of the model must be present, except time fields which may be missing or nil.
// Unknown fields are ignored.
func Decode(doc Document) (resp models.Response, err error) {
	defer decorate.OnError(&err, "response does not match the expected structure")

	if _, ok := asObject(doc[resultsKey]); !ok {
		return models.Response{}, fmt.Errorf("%s: %w", resultsKey, ErrNotObject)
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Metadata:   &md,
		DecodeHook: int32RangeHook,
		Result:     &resp,
	})
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to create decoder: %v", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return models.Response{}, err
	}

	var missing []string
	for _, k := range md.Unset {
		if f, ok := strings.CutPrefix(k, resultsKey+"."); ok && slices.Contains(constants.TimeFields, f) {
			continue
		}
		missing = append(missing, k)
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return models.Response{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return resp, nil
}

// int32RangeHook rejects JSON numbers which don't fit in the int32 field they are decoded into.
func int32RangeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Int32 {
		return data, nil
	}

	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("%s is not an integer: %v", n, err)
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("%d is out of the int32 range", i)
	}

	return data, nil
}

// asObject returns v as a map when it is a JSON object.
func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case Document:
		return o, true
	default:
		return nil, false
	}
}
