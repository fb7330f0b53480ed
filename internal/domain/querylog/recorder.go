package querylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Sadiya-27/Customer-support-bot/pkg/errors"
	"github.com/Sadiya-27/Customer-support-bot/pkg/util"
)

// Store appends records to the durable query log.
type Store interface {
	Append(ctx context.Context, record Record) error
}

// Counter keeps best-effort counts of unanswered queries for the content
// team. Failures here must never affect a turn.
type Counter interface {
	IncrementUnanswered(ctx context.Context, canonical, display string) error
	TopUnanswered(ctx context.Context, limit int) ([]TrendingQuery, error)
}

// Recorder stamps and persists one Record per resolved turn.
type Recorder struct {
	store   Store
	counter Counter
	logger  *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewRecorder wires the recorder with its storage collaborators.
func NewRecorder(store Store, counter Counter, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:   store,
		counter: counter,
		logger:  logger.With("component", "querylog.recorder"),
		now:     util.NowUTC,
		newID:   uuid.NewString,
	}
}

// Record appends the query outcome and returns the generated query id. An
// append failure is fatal for the turn; the audit log is the primary record
// of what users asked and must not be dropped silently.
func (r *Recorder) Record(ctx context.Context, in Input) (string, error) {
	record := Record{
		ID:           r.newID(),
		QueryText:    in.QueryText,
		Timestamp:    util.EpochSeconds(r.now()),
		MatchedFAQID: in.MatchedFAQID,
		MatchScore:   in.MatchScore,
		SentToHuman:  in.SentToHuman,
		Location:     in.Location,
		UserEmail:    in.UserEmail,
	}
	if err := r.store.Append(ctx, record); err != nil {
		return "", apperrors.Wrap("querylog_error", "query log append failed", err)
	}
	if record.SentToHuman {
		canonical := canonicalQuery(record.QueryText)
		if err := r.counter.IncrementUnanswered(ctx, canonical, record.QueryText); err != nil {
			r.logger.Warn("unanswered counter increment failed", "error", err)
		}
	}
	return record.ID, nil
}

// Trending returns the most frequent unanswered queries.
func (r *Recorder) Trending(ctx context.Context, limit int) ([]TrendingQuery, error) {
	items, err := r.counter.TopUnanswered(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("querylog_error", "failed to load trending queries", err)
	}
	return items, nil
}
