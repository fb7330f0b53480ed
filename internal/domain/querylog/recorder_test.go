package querylog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

type stubStore struct {
	appended []Record
	err      error
}

func (s *stubStore) Append(_ context.Context, record Record) error {
	if s.err != nil {
		return s.err
	}
	s.appended = append(s.appended, record)
	return nil
}

type stubCounter struct {
	increments map[string]string
	err        error
}

func (c *stubCounter) IncrementUnanswered(_ context.Context, canonical, display string) error {
	if c.err != nil {
		return c.err
	}
	if c.increments == nil {
		c.increments = make(map[string]string)
	}
	c.increments[canonical] = display
	return nil
}

func (c *stubCounter) TopUnanswered(_ context.Context, _ int) ([]TrendingQuery, error) {
	return nil, c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordStampsIDAndTimestamp(t *testing.T) {
	store := &stubStore{}
	recorder := NewRecorder(store, &stubCounter{}, testLogger())

	id, err := recorder.Record(context.Background(), Input{
		QueryText:    "forgot my wifi password",
		MatchedFAQID: "f1",
		MatchScore:   2,
		UserEmail:    "a@b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, parseErr := uuid.Parse(id); parseErr != nil {
		t.Fatalf("expected a UUID query id, got %q", id)
	}
	if len(store.appended) != 1 {
		t.Fatalf("expected exactly one appended record, got %d", len(store.appended))
	}
	rec := store.appended[0]
	if rec.ID != id || rec.Timestamp == 0 {
		t.Fatalf("record not stamped: %+v", rec)
	}
	if rec.SentToHuman || rec.MatchedFAQID != "f1" || rec.MatchScore != 2 {
		t.Fatalf("matched record shape wrong: %+v", rec)
	}
	if rec.UserEmail != "a@b.com" {
		t.Fatalf("expected user email carried through, got %+v", rec)
	}
}

func TestRecordEscalatedIncrementsCounter(t *testing.T) {
	store := &stubStore{}
	counter := &stubCounter{}
	recorder := NewRecorder(store, counter, testLogger())

	_, err := recorder.Record(context.Background(), Input{
		QueryText:   "How do I bake, a CAKE?",
		SentToHuman: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	display, ok := counter.increments["how do i bake a cake"]
	if !ok {
		t.Fatalf("expected canonical increment, got %v", counter.increments)
	}
	if display != "How do I bake, a CAKE?" {
		t.Fatalf("expected raw text kept as display, got %q", display)
	}
}

func TestRecordMatchedSkipsCounter(t *testing.T) {
	counter := &stubCounter{}
	recorder := NewRecorder(&stubStore{}, counter, testLogger())

	if _, err := recorder.Record(context.Background(), Input{QueryText: "wifi", MatchedFAQID: "f1", MatchScore: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counter.increments) != 0 {
		t.Fatalf("answered query must not be counted as unanswered: %v", counter.increments)
	}
}

func TestRecordAppendFailureIsFatal(t *testing.T) {
	store := &stubStore{err: errors.New("connection reset")}
	counter := &stubCounter{}
	recorder := NewRecorder(store, counter, testLogger())

	if _, err := recorder.Record(context.Background(), Input{QueryText: "wifi", SentToHuman: true}); err == nil {
		t.Fatal("expected append failure to propagate")
	}
	if len(counter.increments) != 0 {
		t.Fatal("counter must not run when the append failed")
	}
}

func TestRecordCounterFailureIsSwallowed(t *testing.T) {
	recorder := NewRecorder(&stubStore{}, &stubCounter{err: errors.New("valkey down")}, testLogger())

	if _, err := recorder.Record(context.Background(), Input{QueryText: "wifi", SentToHuman: true}); err != nil {
		t.Fatalf("counter failure must not fail the turn: %v", err)
	}
}

func TestCanonicalQuery(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"  Hello World  ", "hello world"},
		{"What's, the distance?", "what s the distance"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := canonicalQuery(tc.in); got != tc.out {
			t.Fatalf("canonicalQuery(%q): expected %q got %q", tc.in, tc.out, got)
		}
	}
}
