package faqrepo

import (
	"context"
	"strconv"
	"sync"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
)

// MemoryRepository is an in-memory knowledge base used for tests/dev.
// Enumeration order is insertion order, which keeps tie-breaking stable.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []faq.Entry
}

// NewMemoryRepository constructs a repo seeded with the given entries.
func NewMemoryRepository(entries ...faq.Entry) *MemoryRepository {
	return &MemoryRepository{entries: append([]faq.Entry(nil), entries...)}
}

// Add appends entries after construction, for dev seeding.
func (r *MemoryRepository) Add(entries ...faq.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entries...)
}

// List implements faq.Repository. The cursor is the index of the next entry.
func (r *MemoryRepository) List(_ context.Context, cursor string, limit int) ([]faq.Entry, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, "", err
		}
		start = parsed
	}
	if start >= len(r.entries) {
		return nil, "", nil
	}
	if limit <= 0 {
		limit = len(r.entries)
	}
	end := start + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}

	page := append([]faq.Entry(nil), r.entries[start:end]...)
	next := ""
	if end < len(r.entries) {
		next = strconv.Itoa(end)
	}
	return page, next, nil
}

var _ faq.Repository = (*MemoryRepository)(nil)
