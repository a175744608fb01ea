package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// DefaultStoreTTL is how long a completed analysis stays fetchable for
// export. Analyses are never written to durable storage; they exist only to
// serve the report downloads of the request that produced them.
const DefaultStoreTTL = 30 * time.Minute

// storedAnalysis is one completed analysis held for export.
type storedAnalysis struct {
	result    *types.AnalysisResult
	createdAt time.Time
}

// Store is a bounded in-memory holder for completed analyses.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]storedAnalysis
	ttl     time.Duration

	janitor *time.Ticker
	stop    chan struct{}
}

// NewStore creates a store whose entries expire after ttl.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		entries: make(map[uuid.UUID]storedAnalysis),
		ttl:     ttl,
		janitor: time.NewTicker(ttl / 2),
		stop:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Put stores a result and returns its analysis ID.
func (s *Store) Put(result *types.AnalysisResult) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.entries[id] = storedAnalysis{result: result, createdAt: time.Now()}
	s.mu.Unlock()
	return id
}

// Get returns a stored result, or nil if unknown or expired.
func (s *Store) Get(id uuid.UUID) *types.AnalysisResult {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || time.Since(entry.createdAt) > s.ttl {
		return nil
	}
	return entry.result
}

// sweep evicts expired entries until Stop is called.
func (s *Store) sweep() {
	for {
		select {
		case <-s.janitor.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, entry := range s.entries {
				if entry.createdAt.Before(cutoff) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

// Stop halts the eviction goroutine.
func (s *Store) Stop() {
	s.janitor.Stop()
	close(s.stop)
}
