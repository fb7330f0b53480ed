package trending

import (
	"context"
	"sort"
	"sync"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
)

// MemoryCounter tracks unanswered-query counts in process memory.
type MemoryCounter struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryCounter constructs a counter backed by process memory.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementUnanswered implements querylog.Counter.
func (c *MemoryCounter) IncrementUnanswered(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[canonical]++
	if _, exists := c.displays[canonical]; !exists {
		c.displays[canonical] = display
	}
	return nil
}

// TopUnanswered implements querylog.Counter.
func (c *MemoryCounter) TopUnanswered(_ context.Context, limit int) ([]querylog.TrendingQuery, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if limit <= 0 {
		limit = len(c.counts)
	}
	items := make([]querylog.TrendingQuery, 0, len(c.counts))
	for canonical, count := range c.counts {
		display := c.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, querylog.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ querylog.Counter = (*MemoryCounter)(nil)
