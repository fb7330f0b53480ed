package fulfillment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
	"github.com/Sadiya-27/Customer-support-bot/pkg/metrics"
)

type stubMatcher struct {
	match      faq.Match
	err        error
	lastTokens faq.TokenSet
}

func (m *stubMatcher) BestMatch(_ context.Context, tokens faq.TokenSet) (faq.Match, error) {
	m.lastTokens = tokens
	return m.match, m.err
}

type stubRecorder struct {
	inputs  []querylog.Input
	queryID string
	err     error
}

func (r *stubRecorder) Record(_ context.Context, in querylog.Input) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.inputs = append(r.inputs, in)
	return r.queryID, nil
}

type stubNotifier struct {
	calls   int
	queryID string
	email   string
	err     error
}

func (n *stubNotifier) NotifyHuman(_ context.Context, _ string, queryID, userEmail string) error {
	n.calls++
	n.queryID = queryID
	n.email = userEmail
	return n.err
}

func newServiceUnderTest(m Matcher, r Recorder, n Notifier) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(testConfig(), m, r, n, metrics.NewTurnCounters(), logger)
}

func faqEvent(text string) Event {
	return Event{
		InputTranscript: text,
		SessionState:    SessionState{Intent: Intent{Name: "FallbackIntent"}},
	}
}

func TestHandleTurnConfidentMatch(t *testing.T) {
	matcher := &stubMatcher{match: faq.Match{
		Entry: faq.Entry{ID: "f1", Keywords: []string{"wifi", "password"}, Answer: "Reset at settings>wifi."},
		Score: 2,
		Found: true,
	}}
	recorder := &stubRecorder{queryID: "q-1"}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	resp, err := svc.HandleTurn(context.Background(), faqEvent("forgot my wifi password"))
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	require.Equal(t, "Reset at settings>wifi.", resp.Messages[0].Content)
	require.Equal(t, "Fulfilled", resp.SessionState.Intent.State)
	require.Equal(t, "Close", resp.SessionState.DialogAction.Type)

	require.Len(t, recorder.inputs, 1)
	rec := recorder.inputs[0]
	require.Equal(t, "f1", rec.MatchedFAQID)
	require.Equal(t, 2, rec.MatchScore)
	require.False(t, rec.SentToHuman)
	require.Zero(t, notifier.calls)
}

func TestHandleTurnEscalation(t *testing.T) {
	matcher := &stubMatcher{match: faq.Match{}}
	recorder := &stubRecorder{queryID: "q-77"}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	resp, err := svc.HandleTurn(context.Background(), faqEvent("how do I bake a cake"))
	require.NoError(t, err)
	require.Equal(t, testConfig().ApologyMessage, resp.Messages[0].Content)

	require.Len(t, recorder.inputs, 1)
	rec := recorder.inputs[0]
	require.True(t, rec.SentToHuman)
	require.Empty(t, rec.MatchedFAQID)
	require.Zero(t, rec.MatchScore)

	require.Equal(t, 1, notifier.calls)
	require.Equal(t, "q-77", notifier.queryID)
}

func TestHandleTurnZeroScoreMatchEscalates(t *testing.T) {
	// An entry returned with score 0 must be treated as no match at all.
	matcher := &stubMatcher{match: faq.Match{Entry: faq.Entry{ID: "f9"}, Score: 0, Found: false}}
	recorder := &stubRecorder{queryID: "q-5"}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	resp, err := svc.HandleTurn(context.Background(), faqEvent("unrelated question"))
	require.NoError(t, err)
	require.Equal(t, testConfig().ApologyMessage, resp.Messages[0].Content)
	require.True(t, recorder.inputs[0].SentToHuman)
}

func TestHandleTurnNotifyFailureStillAnswers(t *testing.T) {
	matcher := &stubMatcher{}
	recorder := &stubRecorder{queryID: "q-2"}
	notifier := &stubNotifier{err: errors.New("ses throttled")}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	resp, err := svc.HandleTurn(context.Background(), faqEvent("mystery"))
	require.NoError(t, err)
	require.Equal(t, testConfig().ApologyMessage, resp.Messages[0].Content)
	require.Equal(t, 1, notifier.calls)
}

func TestHandleTurnIdentityCapture(t *testing.T) {
	matcher := &stubMatcher{}
	recorder := &stubRecorder{}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	ev := Event{
		InputTranscript: "hi, my email is a@b.com",
		SessionState: SessionState{
			Intent: Intent{
				Name: "GreetingAndEmail",
				Slots: map[string]*Slot{
					"UserEmail": {Value: &SlotValue{InterpretedValue: "a@b.com"}},
				},
			},
		},
	}

	resp, err := svc.HandleTurn(context.Background(), ev)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", resp.SessionState.SessionAttributes["UserEmail"])
	require.Contains(t, resp.Messages[0].Content, "a@b.com")
	require.Empty(t, recorder.inputs, "identity capture must not create a query record")
	require.Zero(t, notifier.calls)
}

func TestHandleTurnIdentityIntentWithoutEmailFallsThrough(t *testing.T) {
	matcher := &stubMatcher{}
	recorder := &stubRecorder{queryID: "q-3"}
	svc := newServiceUnderTest(matcher, recorder, &stubNotifier{})

	ev := Event{
		InputTranscript: "hello",
		SessionState:    SessionState{Intent: Intent{Name: "GreetingAndEmail"}},
	}
	_, err := svc.HandleTurn(context.Background(), ev)
	require.NoError(t, err)
	require.Len(t, recorder.inputs, 1, "without an email slot the turn takes the FAQ path")
}

func TestHandleTurnSessionEmailCarryOver(t *testing.T) {
	matcher := &stubMatcher{}
	recorder := &stubRecorder{queryID: "q-4"}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(matcher, recorder, notifier)

	ev := Event{
		InputTranscript: "printer will not print",
		SessionState: SessionState{
			SessionAttributes: map[string]string{"UserEmail": "a@b.com"},
			Intent:            Intent{Name: "FallbackIntent"},
		},
	}
	_, err := svc.HandleTurn(context.Background(), ev)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", recorder.inputs[0].UserEmail)
	require.Equal(t, "a@b.com", notifier.email)
}

func TestHandleTurnLocationSynthesis(t *testing.T) {
	matcher := &stubMatcher{match: faq.Match{
		Entry: faq.Entry{ID: "wifi-library", Answer: "Library wifi is GuestNet."},
		Score: 2,
		Found: true,
	}}
	recorder := &stubRecorder{queryID: "q-6"}
	svc := newServiceUnderTest(matcher, recorder, &stubNotifier{})

	ev := Event{
		InputTranscript: "is there wifi here",
		SessionState: SessionState{
			Intent: Intent{
				Name: "WiFiIssue",
				Slots: map[string]*Slot{
					"LocationType": {Value: &SlotValue{InterpretedValue: "library"}},
				},
			},
		},
	}
	_, err := svc.HandleTurn(context.Background(), ev)
	require.NoError(t, err)
	require.True(t, matcher.lastTokens.Contains("wifi"))
	require.True(t, matcher.lastTokens.Contains("library"))
	// The audit record keeps the raw utterance, not the synthesized phrase.
	require.Equal(t, "is there wifi here", recorder.inputs[0].QueryText)
	require.Equal(t, "library", recorder.inputs[0].Location)
}

func TestHandleTurnMatcherFailureIsFatal(t *testing.T) {
	matcher := &stubMatcher{err: errors.New("scan failed")}
	recorder := &stubRecorder{}
	svc := newServiceUnderTest(matcher, recorder, &stubNotifier{})

	_, err := svc.HandleTurn(context.Background(), faqEvent("wifi"))
	require.Error(t, err)
	require.Empty(t, recorder.inputs)
}

func TestHandleTurnRecordFailureSkipsNotification(t *testing.T) {
	recorder := &stubRecorder{err: errors.New("insert failed")}
	notifier := &stubNotifier{}
	svc := newServiceUnderTest(&stubMatcher{}, recorder, notifier)

	_, err := svc.HandleTurn(context.Background(), faqEvent("wifi"))
	require.Error(t, err)
	require.Zero(t, notifier.calls)
}
