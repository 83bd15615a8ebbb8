package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord is one captured log entry.
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogCapture collects log records emitted through its handler so tests
// can assert on what a component logged. Safe for concurrent use.
type LogCapture struct {
	mu      sync.Mutex
	records []LogRecord
	t       *testing.T
}

// NewLogCapture creates an empty capture. When t is non-nil every record
// is also echoed to the test output.
func NewLogCapture(t *testing.T) *LogCapture {
	return &LogCapture{t: t}
}

// NewTestLogger returns a logger whose output is captured, together with
// the capture for assertions.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	capture := NewLogCapture(t)
	return slog.New(capture.Handler()), capture
}

// Handler returns a slog.Handler feeding this capture.
func (c *LogCapture) Handler() slog.Handler {
	return &captureHandler{capture: c}
}

// Records returns a copy of all captured records.
func (c *LogCapture) Records() []LogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]LogRecord, len(c.records))
	copy(records, c.records)
	return records
}

// RecordsByLevel returns the captured records at exactly the given level.
func (c *LogCapture) RecordsByLevel(level slog.Level) []LogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	var filtered []LogRecord
	for _, r := range c.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ContainsMessage reports whether any record's message contains message.
func (c *LogCapture) ContainsMessage(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// ContainsAttr reports whether any record carries the attribute.
func (c *LogCapture) ContainsAttr(key string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.records {
		if v, ok := r.Attrs[key]; ok && v == value {
			return true
		}
	}
	return false
}

// Count returns the number of captured records.
func (c *LogCapture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Clear removes all captured records.
func (c *LogCapture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = c.records[:0]
}

func (c *LogCapture) append(r LogRecord) {
	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()

	if c.t != nil {
		c.t.Logf("[%s] %s %v", r.Level, r.Message, r.Attrs)
	}
}

// captureHandler feeds a LogCapture. WithAttrs children carry their
// attributes into every record they handle.
type captureHandler struct {
	capture *LogCapture
	attrs   []slog.Attr
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.capture.append(LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled captures every level so tests can assert on debug output too.
func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{capture: h.capture, attrs: merged}
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}
