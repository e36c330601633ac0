package view

import (
	"context"
	"sync"

	"github.com/pmurley/link-tracker/internal/analysis"
)

// Loader produces a fresh report, typically tracker.Service.Report.
type Loader func(ctx context.Context) (analysis.Report, error)

// Store serializes events for one dashboard and hands out refresh
// sequence numbers. Loads run outside the lock, so overlapping refreshes
// are allowed; only the most recently started one can land.
type Store struct {
	mu    sync.Mutex
	state State
	next  uint64
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(ev Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, ev)
	return s.state
}

// BeginRefresh issues the next sequence number and marks the state loading.
func (s *Store) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.state = Reduce(s.state, RefreshStarted{Seq: s.next})
	return s.next
}

// Refresh runs load under a new sequence number and applies its outcome.
func (s *Store) Refresh(ctx context.Context, load Loader) State {
	seq := s.BeginRefresh()
	report, err := load(ctx)
	if err != nil {
		return s.Dispatch(RefreshFailed{Seq: seq, Err: err})
	}
	return s.Dispatch(RefreshSucceeded{Seq: seq, Report: report})
}
