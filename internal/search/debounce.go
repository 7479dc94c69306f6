// Package search provides the debounced search coordinator: it owns
// the idle timer between keystrokes and the sequence guard that keeps a
// slow stale response from overwriting newer results.
//
// The HTTP layer shares only MinQueryLength; per-keystroke debouncing
// cannot live behind a stateless request/response endpoint. Debouncer
// is for callers that embed the engine directly and feed it a keystroke
// stream, wrapping a search func such as SearchService.Search.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/model"
)

const (
	// DefaultInterval is the idle time after the last keystroke before a
	// search fires.
	DefaultInterval = 500 * time.Millisecond

	// MinQueryLength is the shortest query that may dispatch a search.
	// Shorter input cancels any pending dispatch and clears results.
	MinQueryLength = 2
)

// Func runs one search dispatch.
type Func func(ctx context.Context, query string) []model.SearchResult

// Apply receives the results of a non-stale dispatch.
type Apply func(results []model.SearchResult)

// Debouncer coalesces keystrokes into at most one search per idle
// interval. Each keystroke cancels the pending timer and schedules a
// new one; dispatches carry a monotonically increasing sequence number
// and a completed dispatch is applied only if no newer dispatch has
// been applied already.
type Debouncer struct {
	search   Func
	apply    Apply
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64 // last dispatched
	applied uint64 // last applied
}

// NewDebouncer creates a Debouncer with the default interval.
func NewDebouncer(search Func, apply Apply) *Debouncer {
	return &Debouncer{
		search:   search,
		apply:    apply,
		interval: DefaultInterval,
	}
}

// NewDebouncerWithInterval creates a Debouncer with a custom interval.
// Used by tests to avoid real half-second waits.
func NewDebouncerWithInterval(search Func, apply Apply, interval time.Duration) *Debouncer {
	d := NewDebouncer(search, apply)
	d.interval = interval
	return d
}

// Input registers a keystroke. Queries shorter than MinQueryLength
// never fire: the pending timer is cancelled and results are cleared.
func (d *Debouncer) Input(ctx context.Context, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if len(query) < MinQueryLength {
		d.apply([]model.SearchResult{})
		return
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.dispatch(ctx, query)
	})
}

// dispatch runs one search and applies its results unless a newer
// dispatch has completed in the meantime.
func (d *Debouncer) dispatch(ctx context.Context, query string) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	results := d.search(ctx, query)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq < d.applied {
		// A newer dispatch already resolved; drop the stale results.
		return
	}
	d.applied = seq
	d.apply(results)
}

// Stop cancels any pending dispatch.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
