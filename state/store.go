package state

import (
	"context"
	"log"
	"sync"

	"lml-server/models"
)

// Store holds the current AppState for concurrent HTTP handlers. At most one
// fetch is current: starting a new one cancels the context of the previous.
type Store struct {
	mu     sync.Mutex
	state  AppState
	cancel context.CancelFunc
}

func NewStore(initial AppState) *Store {
	return &Store{state: initial}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies a transition that cannot fail.
func (s *Store) Update(fn func(AppState) AppState) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// TryUpdate applies a transition and keeps the old state if it fails.
func (s *Store) TryUpdate(fn func(AppState) (AppState, error)) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return s.state, nil
}

// BeginFetch applies a date transition, cancels the superseded fetch and
// returns the new state together with the context the new fetch must use.
func (s *Store) BeginFetch(parent context.Context, fn func(AppState) AppState) (AppState, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.state = fn(s.state)
	log.Printf("[Store] Fetch generation=%d started for %s", s.state.Generation, s.state.Date)
	return s.state, ctx
}

// Complete commits the result of fetch generation. It reports false when the
// fetch was superseded and the result was dropped.
func (s *Store) Complete(generation uint64, agg *models.GigAggregate) (AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.state.FetchSucceeded(generation, agg)
	if !ok {
		log.Printf("[Store] Dropping stale result of generation=%d (current=%d)", generation, s.state.Generation)
		return s.state, false
	}
	s.state = next
	s.release(generation)
	return s.state, true
}

// Fail records the failure of fetch generation, unless it was superseded.
func (s *Store) Fail(generation uint64, message string) (AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.state.FetchFailed(generation, message)
	if !ok {
		log.Printf("[Store] Dropping stale failure of generation=%d (current=%d)", generation, s.state.Generation)
		return s.state, false
	}
	s.state = next
	s.release(generation)
	return s.state, true
}

func (s *Store) release(generation uint64) {
	if s.cancel != nil && generation == s.state.Generation {
		s.cancel()
		s.cancel = nil
	}
}
