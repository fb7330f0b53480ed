package faq

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

type sliceRepo struct {
	entries  []Entry
	pageErr  error
	listHits int
}

func (r *sliceRepo) List(_ context.Context, cursor string, limit int) ([]Entry, string, error) {
	r.listHits++
	if r.pageErr != nil {
		return nil, "", r.pageErr
	}
	start := 0
	if cursor != "" {
		start, _ = strconv.Atoi(cursor)
	}
	if start >= len(r.entries) {
		return nil, "", nil
	}
	end := start + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}
	next := ""
	if end < len(r.entries) {
		next = strconv.Itoa(end)
	}
	return r.entries[start:end], next, nil
}

func TestBestMatchSelectsHighestOverlap(t *testing.T) {
	repo := &sliceRepo{entries: []Entry{
		{ID: "f0", Keywords: []string{"printer", "jam"}, Answer: "Open the tray."},
		{ID: "f1", Keywords: []string{"wifi", "password"}, Answer: "Reset at settings>wifi."},
	}}
	matcher := NewMatcher(repo, 0)

	match, err := matcher.BestMatch(context.Background(), Tokenize("forgot my wifi password"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !match.Found || match.Entry.ID != "f1" || match.Score != 2 {
		t.Fatalf("expected f1 with score 2, got %+v", match)
	}
}

func TestBestMatchTieKeepsFirstEntry(t *testing.T) {
	repo := &sliceRepo{entries: []Entry{
		{ID: "first", Keywords: []string{"vpn"}},
		{ID: "second", Keywords: []string{"vpn"}},
	}}
	matcher := NewMatcher(repo, 10)

	match, err := matcher.BestMatch(context.Background(), Tokenize("vpn keeps dropping"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Entry.ID != "first" || match.Score != 1 {
		t.Fatalf("expected first entry to win the tie, got %+v", match)
	}
}

func TestBestMatchNoOverlap(t *testing.T) {
	repo := &sliceRepo{entries: []Entry{
		{ID: "f1", Keywords: []string{"wifi", "password"}},
	}}
	matcher := NewMatcher(repo, 10)

	match, err := matcher.BestMatch(context.Background(), Tokenize("how do I bake a cake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Found || match.Score != 0 {
		t.Fatalf("expected no match, got %+v", match)
	}
}

func TestBestMatchEmptyBase(t *testing.T) {
	matcher := NewMatcher(&sliceRepo{}, 10)
	match, err := matcher.BestMatch(context.Background(), Tokenize("anything at all"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Found {
		t.Fatalf("expected no match on empty base, got %+v", match)
	}
}

func TestBestMatchScansAllPages(t *testing.T) {
	entries := make([]Entry, 0, 7)
	for i := 0; i < 6; i++ {
		entries = append(entries, Entry{ID: strconv.Itoa(i), Keywords: []string{"filler" + strconv.Itoa(i)}})
	}
	entries = append(entries, Entry{ID: "target", Keywords: []string{"badge", "door"}})
	repo := &sliceRepo{entries: entries}
	matcher := NewMatcher(repo, 2)

	match, err := matcher.BestMatch(context.Background(), Tokenize("my badge will not open the door"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Entry.ID != "target" || match.Score != 2 {
		t.Fatalf("expected target on last page, got %+v", match)
	}
	if repo.listHits < 4 {
		t.Fatalf("expected the scan to page through the base, got %d calls", repo.listHits)
	}
}

func TestBestMatchPropagatesScanError(t *testing.T) {
	repo := &sliceRepo{pageErr: errors.New("boom")}
	matcher := NewMatcher(repo, 10)

	if _, err := matcher.BestMatch(context.Background(), Tokenize("wifi")); err == nil {
		t.Fatal("expected scan error to propagate")
	}
}

func TestBestMatchDuplicateKeywordsCountOnce(t *testing.T) {
	repo := &sliceRepo{entries: []Entry{
		{ID: "dup", Keywords: []string{"wifi", "wifi", "wifi"}},
		{ID: "pair", Keywords: []string{"wifi", "password"}},
	}}
	matcher := NewMatcher(repo, 10)

	match, err := matcher.BestMatch(context.Background(), Tokenize("wifi password"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Entry.ID != "pair" || match.Score != 2 {
		t.Fatalf("expected pair to outrank duplicated keywords, got %+v", match)
	}
}
