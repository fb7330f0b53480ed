package trending

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
)

// ValkeyCounter keeps the unanswered-query counts in a Valkey sorted set so
// they survive restarts and are shared across instances.
type ValkeyCounter struct {
	client valkey.Client
	prefix string
}

// NewValkeyCounter constructs a counter backed by Valkey.
func NewValkeyCounter(client valkey.Client, prefix string) *ValkeyCounter {
	if prefix == "" {
		prefix = "queries"
	}
	return &ValkeyCounter{client: client, prefix: prefix}
}

// IncrementUnanswered implements querylog.Counter.
func (c *ValkeyCounter) IncrementUnanswered(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := c.client.Do(ctx, c.client.B().Zincrby().Key(c.setKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = c.client.Do(ctx, c.client.B().Set().Key(c.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

// TopUnanswered implements querylog.Counter.
func (c *ValkeyCounter) TopUnanswered(ctx context.Context, limit int) ([]querylog.TrendingQuery, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := c.client.Do(ctx, c.client.B().Zrevrange().Key(c.setKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]querylog.TrendingQuery, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, querylog.TrendingQuery{Query: c.fetchDisplay(ctx, member), Count: int64(score)})
	}
	return out, nil
}

func (c *ValkeyCounter) fetchDisplay(ctx context.Context, canonical string) string {
	resp := c.client.Do(ctx, c.client.B().Get().Key(c.displayKey(canonical)).Build())
	display, err := resp.ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (c *ValkeyCounter) setKey() string {
	return fmt.Sprintf("%s:unanswered", c.prefix)
}

func (c *ValkeyCounter) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", c.prefix, canonical)
}

var _ querylog.Counter = (*ValkeyCounter)(nil)
