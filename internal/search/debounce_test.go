package search_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/search"
)

// recorder collects applied result sets in order.
type recorder struct {
	mu   sync.Mutex
	sets [][]model.SearchResult
}

func (r *recorder) apply(results []model.SearchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, results)
}

func (r *recorder) snapshot() [][]model.SearchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]model.SearchResult, len(r.sets))
	copy(out, r.sets)
	return out
}

func echoSearch(_ context.Context, query string) []model.SearchResult {
	return []model.SearchResult{{Symbol: strings.ToUpper(query)}}
}

// TestInputCoalescing tests that rapid keystrokes fire one search.
//
// WHY: Each keystroke cancels the pending timer, so typing "btc" as
// three quick inputs must dispatch a single search for the final text.
func TestInputCoalescing(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	rec := &recorder{}
	d := search.NewDebouncerWithInterval(func(ctx context.Context, q string) []model.SearchResult {
		mu.Lock()
		queries = append(queries, q)
		mu.Unlock()
		return echoSearch(ctx, q)
	}, rec.apply, 30*time.Millisecond)
	defer d.Stop()

	ctx := context.Background()
	d.Input(ctx, "bt")
	d.Input(ctx, "btc")
	d.Input(ctx, "btc ")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"btc "}, queries)
}

// TestShortQuery tests the minimum-length guard.
//
// WHY: Input below the minimum length must clear results immediately
// and cancel any pending dispatch, without ever reaching the search
// function.
func TestShortQuery(t *testing.T) {
	dispatched := false
	rec := &recorder{}
	d := search.NewDebouncerWithInterval(func(ctx context.Context, q string) []model.SearchResult {
		dispatched = true
		return echoSearch(ctx, q)
	}, rec.apply, 10*time.Millisecond)
	defer d.Stop()

	ctx := context.Background()
	d.Input(ctx, "btc") // schedules a dispatch
	d.Input(ctx, "b")   // cancels it and clears

	sets := rec.snapshot()
	require.Len(t, sets, 1)
	assert.Empty(t, sets[0])

	// The cancelled dispatch must never fire.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
	assert.False(t, dispatched)
}

// TestStaleDispatchDiscarded tests the sequence guard.
//
// WHY: A slow response for an old query must not overwrite the results
// of a newer query that already resolved. The guard is the sequence
// number, not wall-clock timing.
func TestStaleDispatchDiscarded(t *testing.T) {
	started := make(chan string, 2)
	release := make(chan struct{})
	rec := &recorder{}

	d := search.NewDebouncerWithInterval(func(ctx context.Context, q string) []model.SearchResult {
		started <- q
		if q == "slow" {
			<-release
		}
		return echoSearch(ctx, q)
	}, rec.apply, time.Millisecond)
	defer d.Stop()

	ctx := context.Background()

	d.Input(ctx, "slow")
	require.Equal(t, "slow", <-started) // in flight, blocked

	d.Input(ctx, "fast")
	require.Equal(t, "fast", <-started)
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	close(release)
	time.Sleep(50 * time.Millisecond)

	sets := rec.snapshot()
	require.Len(t, sets, 1)
	assert.Equal(t, "FAST", sets[0][0].Symbol)
}
