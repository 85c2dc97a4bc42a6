package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ruminaider/combobox/internal/combobox"
)

// DefaultLimit is the page size used when a query does not set one.
const DefaultLimit = 10

// ErrBadCursor is returned for cursors this source did not issue.
var ErrBadCursor = errors.New("invalid cursor")

// Query asks for one page of options. An empty Cursor starts from the top.
type Query struct {
	Text   string
	Cursor string
	Limit  int
}

// Page is one slice of results. NextCursor is empty when HasMore is false.
type Page struct {
	Options    []combobox.Option
	NextCursor string
	HasMore    bool
}

// Source serves options page by page, filtering on the server side.
type Source interface {
	Fetch(ctx context.Context, q Query) (Page, error)
}

// Memory is an in-memory Source. Latency simulates a round trip and is
// interrupted by context cancellation.
type Memory struct {
	options []combobox.Option
	matcher combobox.Matcher
	latency time.Duration
}

// MemoryOption configures a Memory source.
type MemoryOption func(*Memory)

// WithLatency delays every Fetch by d.
func WithLatency(d time.Duration) MemoryOption {
	return func(m *Memory) { m.latency = d }
}

// WithMatcher replaces the substring matcher.
func WithMatcher(matcher combobox.Matcher) MemoryOption {
	return func(m *Memory) { m.matcher = matcher }
}

// NewMemory returns a Source over opts.
func NewMemory(opts []combobox.Option, options ...MemoryOption) *Memory {
	m := &Memory{options: opts, matcher: combobox.SubstringMatcher{}}
	for _, o := range options {
		o(m)
	}
	return m
}

// Fetch implements Source. Cursors are opaque offsets into the filtered
// result list.
func (m *Memory) Fetch(ctx context.Context, q Query) (Page, error) {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	offset := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil || n < 0 {
			return Page{}, fmt.Errorf("cursor %q: %w", q.Cursor, ErrBadCursor)
		}
		offset = n
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := m.matcher.Match(q.Text, m.options)
	if offset > len(matches) {
		return Page{}, fmt.Errorf("cursor %q past end: %w", q.Cursor, ErrBadCursor)
	}
	end := min(offset+limit, len(matches))

	page := Page{Options: matches[offset:end:end]}
	if end < len(matches) {
		page.HasMore = true
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}
