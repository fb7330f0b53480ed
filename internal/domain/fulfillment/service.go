package fulfillment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
	"github.com/Sadiya-27/Customer-support-bot/pkg/metrics"
)

// A match is confident once it shares at least one token with the query.
const minConfidentScore = 1

// locationTopic pins location-scoped lookups to the wifi FAQ category. The
// coupling is inherited from the bot definition; revisit when a second
// location-aware category exists.
const locationTopic = "wifi"

// Config holds the dialog contract names and fixed response texts.
type Config struct {
	IdentityIntent   string
	FallbackIntent   string
	EmailSlot        string
	LocationSlot     string
	SessionEmailKey  string
	GreetingTemplate string
	ApologyMessage   string
}

// Matcher finds the best knowledge-base entry for a token set.
type Matcher interface {
	BestMatch(ctx context.Context, tokens faq.TokenSet) (faq.Match, error)
}

// Recorder appends one audit record per resolved turn.
type Recorder interface {
	Record(ctx context.Context, in querylog.Input) (string, error)
}

// Notifier forwards unanswered queries to a human operator.
type Notifier interface {
	NotifyHuman(ctx context.Context, queryText, queryID, userEmail string) error
}

// Service handles one dialog turn end to end.
type Service interface {
	HandleTurn(ctx context.Context, ev Event) (Response, error)
}

type service struct {
	cfg      Config
	matcher  Matcher
	recorder Recorder
	notifier Notifier
	counters *metrics.TurnCounters
	logger   *slog.Logger
}

// NewService wires the fulfillment orchestrator.
func NewService(cfg Config, matcher Matcher, recorder Recorder, notifier Notifier, counters *metrics.TurnCounters, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		matcher:  matcher,
		recorder: recorder,
		notifier: notifier,
		counters: counters,
		logger:   logger.With("component", "fulfillment.service"),
	}
}

// HandleTurn runs the match/record/escalate state machine for one turn.
// Exactly one response is produced; a returned error means neither a record
// nor a user-facing answer exists for the turn and the transport decides how
// to degrade.
func (s *service) HandleTurn(ctx context.Context, ev Event) (Response, error) {
	s.counters.Turn()
	turn := ParseEvent(ev, s.cfg)

	// Identity capture ends the turn before any matching happens.
	if turn.Intent == s.cfg.IdentityIntent && turn.Email != "" {
		turn.SessionAttributes[s.cfg.SessionEmailKey] = turn.Email
		s.counters.EmailCaptured()
		s.logger.Info("stored user email in session attributes", "intent", turn.Intent)
		return closeResponse(turn, fmt.Sprintf(s.cfg.GreetingTemplate, turn.Email)), nil
	}

	email := turn.Email
	if email == "" {
		email = turn.SessionAttributes[s.cfg.SessionEmailKey]
	}

	queryText := turn.Text
	if turn.Location != "" {
		queryText = locationTopic + " " + turn.Location
	}

	match, err := s.matcher.BestMatch(ctx, faq.Tokenize(queryText))
	if err != nil {
		s.counters.TurnFailed()
		return Response{}, err
	}

	if match.Found && match.Score >= minConfidentScore {
		_, err := s.recorder.Record(ctx, querylog.Input{
			QueryText:    turn.Text,
			MatchedFAQID: match.Entry.ID,
			MatchScore:   match.Score,
			Location:     turn.Location,
			UserEmail:    email,
		})
		if err != nil {
			s.counters.TurnFailed()
			return Response{}, err
		}
		s.counters.Answered()
		s.logger.Info("query answered", "intent", turn.Intent, "faq_id", match.Entry.ID, "score", match.Score)
		return closeResponse(turn, match.Entry.Answer), nil
	}

	queryID, err := s.recorder.Record(ctx, querylog.Input{
		QueryText:   turn.Text,
		MatchScore:  match.Score,
		SentToHuman: true,
		Location:    turn.Location,
		UserEmail:   email,
	})
	if err != nil {
		s.counters.TurnFailed()
		return Response{}, err
	}
	s.counters.Escalated()
	// Delivery failures never affect the reply.
	if notifyErr := s.notifier.NotifyHuman(ctx, turn.Text, queryID, email); notifyErr != nil {
		s.counters.NotifyFailed()
	}
	s.logger.Info("query escalated", "intent", turn.Intent, "query_id", queryID, "score", match.Score)
	return closeResponse(turn, s.cfg.ApologyMessage), nil
}
