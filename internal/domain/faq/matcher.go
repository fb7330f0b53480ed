package faq

import (
	"context"

	apperrors "github.com/Sadiya-27/Customer-support-bot/pkg/errors"
)

const defaultScanPageSize = 100

// Match is the outcome of one knowledge-base scan.
type Match struct {
	Entry Entry
	Score int
	Found bool
}

// Matcher scores knowledge-base entries by keyword overlap. The scan is a
// full linear pass over the base on every call; a known limit that is
// acceptable at the knowledge-base sizes this bot serves.
type Matcher struct {
	repo     Repository
	pageSize int
}

// NewMatcher constructs a matcher over the given repository.
func NewMatcher(repo Repository, pageSize int) *Matcher {
	if pageSize <= 0 {
		pageSize = defaultScanPageSize
	}
	return &Matcher{repo: repo, pageSize: pageSize}
}

// BestMatch scans every entry and keeps the one with the strictly greatest
// token overlap; on equal scores the entry seen first wins. Found is false
// when no entry shares a single token with the query.
func (m *Matcher) BestMatch(ctx context.Context, tokens TokenSet) (Match, error) {
	var (
		best   Match
		cursor string
	)
	for {
		entries, next, err := m.repo.List(ctx, cursor, m.pageSize)
		if err != nil {
			return Match{}, apperrors.Wrap("kb_error", "knowledge base scan failed", err)
		}
		for _, entry := range entries {
			if score := overlap(tokens, entry.Keywords); score > best.Score {
				best = Match{Entry: entry, Score: score, Found: true}
			}
		}
		if next == "" {
			return best, nil
		}
		cursor = next
	}
}

func overlap(tokens TokenSet, keywords []string) int {
	seen := make(map[string]struct{}, len(keywords))
	score := 0
	for _, keyword := range keywords {
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}
		if _, hit := tokens[keyword]; hit {
			score++
		}
	}
	return score
}
