package magazine

import (
	"context"
	"strings"
	"sync"
	"time"
)

// SearchUpdate is what a Searcher delivers for one settled input. Cleared
// means the input was too short and previous results should be dropped.
type SearchUpdate struct {
	Token    uint64
	Term     string
	Articles []Article
	Err      error
	Cleared  bool
}

// Searcher debounces search-as-you-type input. Each Input supersedes the
// previous one: a pending query that has not fired yet is cancelled outright,
// and a query already in flight has its response discarded when it loses the
// token race. Only the update for the latest input ever reaches the consumer.
type Searcher struct {
	query     func(ctx context.Context, term string) ([]Article, error)
	debounce  time.Duration
	minLength int

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer

	updates chan SearchUpdate
}

// NewSearcher builds a debounced searcher over the manager's direct search.
func (m *Manager) NewSearcher() *Searcher {
	return &Searcher{
		query:     m.Search,
		debounce:  SearchDebounce,
		minLength: SearchMinLength,
		updates:   make(chan SearchUpdate, 1),
	}
}

// Updates delivers at most the latest settled result; stale unconsumed
// updates are replaced, never queued.
func (s *Searcher) Updates() <-chan SearchUpdate {
	return s.updates
}

// Input feeds one keystroke's worth of text. Short input clears immediately;
// anything else waits out the quiet period before querying.
func (s *Searcher) Input(ctx context.Context, term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	token := s.seq

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	trimmed := strings.TrimSpace(term)
	if len([]rune(trimmed)) < s.minLength {
		s.publish(SearchUpdate{Token: token, Term: trimmed, Cleared: true})
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(ctx, token, trimmed)
	})
}

// Stop cancels any pending query.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) fire(ctx context.Context, token uint64, term string) {
	if !s.isLatest(token) {
		return
	}

	articles, err := s.query(ctx, term)

	// The response may have lost the race while the query was in flight.
	if !s.isLatest(token) {
		return
	}

	s.publish(SearchUpdate{Token: token, Term: term, Articles: articles, Err: err})
}

func (s *Searcher) isLatest(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token == s.seq
}

func (s *Searcher) publish(update SearchUpdate) {
	for {
		select {
		case s.updates <- update:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}
