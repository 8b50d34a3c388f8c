package testutils

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ExpectedRecord is a log record a test expects to be emitted.
// Attrs are matched by key and string value; other attributes of the record are ignored.
type ExpectedRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Compare asserts that have matches want.
func (want ExpectedRecord) Compare(t *testing.T, have Record) {
	t.Helper()

	assert.Equal(t, want.Level, have.Level, "Expected Level did not match real Level")
	if want.Message != "" {
		assert.Contains(t, have.Message, want.Message, "Real Message does not contain Expected")
	}
	for k, v := range want.Attrs {
		assert.Equal(t, v, have.Attrs[k], "Real attribute %q does not match Expected", k)
	}
}

// Record is a handled log record, flattened with the attributes its logger was derived with.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// MockHandler is a slog.Handler recording every record it handles.
// Handlers derived with WithAttrs share their records with their parent.
type MockHandler struct {
	mu      *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

// NewMockHandler returns a new MockHandler.
func NewMockHandler() *MockHandler {
	return &MockHandler{
		mu:      &sync.Mutex{},
		records: &[]Record{},
	}
}

// Enabled implements Handler.Enabled.
func (h *MockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

// Handle implements Handler.Handle.
func (h *MockHandler) Handle(ctx context.Context, record slog.Record) error {
	r := Record{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   make(map[string]string),
	}
	for _, a := range h.attrs {
		r.Attrs[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		r.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, r)
	return nil
}

// WithAttrs implements Handler.WithAttrs.
func (h *MockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MockHandler{
		mu:      h.mu,
		records: h.records,
		attrs:   append(slices.Clip(h.attrs), attrs...),
	}
}

// WithGroup implements Handler.WithGroup. Groups are not tracked.
func (h *MockHandler) WithGroup(name string) slog.Handler {
	return h
}

// Records returns a copy of the records handled so far.
func (h *MockHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(*h.records)
}
