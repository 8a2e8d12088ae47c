package magazine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(query func(ctx context.Context, term string) ([]Article, error)) *Searcher {
	return &Searcher{
		query:     query,
		debounce:  10 * time.Millisecond,
		minLength: SearchMinLength,
		updates:   make(chan SearchUpdate, 1),
	}
}

func waitForUpdate(t *testing.T, s *Searcher) SearchUpdate {
	t.Helper()
	select {
	case update := <-s.Updates():
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search update")
		return SearchUpdate{}
	}
}

func TestSearcher_DebouncedQuery(t *testing.T) {
	ctx := context.Background()

	var calls int32
	s := newTestSearcher(func(ctx context.Context, term string) ([]Article, error) {
		atomic.AddInt32(&calls, 1)
		return []Article{{ID: 1, Title: "Go Time"}}, nil
	})
	defer s.Stop()

	s.Input(ctx, "go concurrency")

	update := waitForUpdate(t, s)
	assert.Equal(t, "go concurrency", update.Term)
	assert.False(t, update.Cleared)
	require.Len(t, update.Articles, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSearcher_ShortInputClearsWithoutQuery(t *testing.T) {
	ctx := context.Background()

	s := newTestSearcher(func(ctx context.Context, term string) ([]Article, error) {
		t.Fatal("query must not run for short input")
		return nil, nil
	})
	defer s.Stop()

	s.Input(ctx, "a")

	update := waitForUpdate(t, s)
	assert.True(t, update.Cleared)
	assert.Empty(t, update.Articles)
}

func TestSearcher_RapidInputRunsOnlyLatest(t *testing.T) {
	ctx := context.Background()

	var calls int32
	s := newTestSearcher(func(ctx context.Context, term string) ([]Article, error) {
		atomic.AddInt32(&calls, 1)
		return []Article{{Title: term}}, nil
	})
	defer s.Stop()

	// Typing faster than the debounce window: only the last input may fire.
	s.Input(ctx, "go")
	s.Input(ctx, "go c")
	s.Input(ctx, "go conc")
	s.Input(ctx, "go concurrency")

	update := waitForUpdate(t, s)
	assert.Equal(t, "go concurrency", update.Term)

	// Give a superseded timer a chance to fire wrongly before counting.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSearcher_InFlightResponseDiscardedWhenSuperseded(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan string, 2)
	s := newTestSearcher(func(ctx context.Context, term string) ([]Article, error) {
		started <- term
		if term == "slow" {
			<-release
		}
		return []Article{{Title: term}}, nil
	})
	defer s.Stop()

	s.Input(ctx, "slow")
	<-started

	// Supersede while the first query is blocked in flight.
	s.Input(ctx, "fast")
	<-started
	close(release)

	update := waitForUpdate(t, s)
	assert.Equal(t, "fast", update.Term, "the stale in-flight response must not surface")

	select {
	case stale := <-s.Updates():
		t.Fatalf("unexpected second update for term %q", stale.Term)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSearcher_LatestWinsWhenUnconsumed(t *testing.T) {
	s := newTestSearcher(nil)

	// Two clears published back to back with no reader: the second replaces
	// the first instead of blocking.
	s.publish(SearchUpdate{Token: 1, Cleared: true})
	s.publish(SearchUpdate{Token: 2, Cleared: true})

	update := waitForUpdate(t, s)
	assert.Equal(t, uint64(2), update.Token)
}

func TestSearcher_StopCancelsPending(t *testing.T) {
	ctx := context.Background()

	s := newTestSearcher(func(ctx context.Context, term string) ([]Article, error) {
		t.Fatal("query must not run after Stop")
		return nil, nil
	})

	s.Input(ctx, "about to stop")
	s.Stop()

	select {
	case update := <-s.Updates():
		t.Fatalf("unexpected update after Stop: %+v", update)
	case <-time.After(50 * time.Millisecond):
	}
}
