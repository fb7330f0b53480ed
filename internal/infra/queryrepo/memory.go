package queryrepo

import (
	"context"
	"sync"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
)

// MemoryStore keeps appended query records in process memory, for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	records []querylog.Record
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements querylog.Store.
func (s *MemoryStore) Append(_ context.Context, record querylog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of everything appended so far.
func (s *MemoryStore) Records() []querylog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]querylog.Record(nil), s.records...)
}

var _ querylog.Store = (*MemoryStore)(nil)
