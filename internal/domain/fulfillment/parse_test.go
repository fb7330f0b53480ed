package fulfillment

import "testing"

func testConfig() Config {
	return Config{
		IdentityIntent:   "GreetingAndEmail",
		FallbackIntent:   "FallbackIntent",
		EmailSlot:        "UserEmail",
		LocationSlot:     "LocationType",
		SessionEmailKey:  "UserEmail",
		GreetingTemplate: "Thanks, %s! How can I help you today?",
		ApologyMessage:   "I'm sorry, I don't have an answer. I've forwarded this to our IT team.",
	}
}

func TestParseEventDefaults(t *testing.T) {
	turn := ParseEvent(Event{}, testConfig())

	if turn.Text != "" || turn.Location != "" || turn.Email != "" {
		t.Fatalf("expected empty defaults, got %+v", turn)
	}
	if turn.Intent != "FallbackIntent" {
		t.Fatalf("expected fallback intent, got %q", turn.Intent)
	}
	if turn.SessionAttributes == nil || len(turn.SessionAttributes) != 0 {
		t.Fatalf("expected empty attribute map, got %#v", turn.SessionAttributes)
	}
}

func TestParseEventLegacyMessageField(t *testing.T) {
	turn := ParseEvent(Event{Message: "hello there"}, testConfig())
	if turn.Text != "hello there" {
		t.Fatalf("expected legacy message field to carry the text, got %q", turn.Text)
	}
}

func TestParseEventExtractsSlotsAndAttributes(t *testing.T) {
	ev := Event{
		InputTranscript: "wifi is down in the library",
		SessionState: SessionState{
			SessionAttributes: map[string]string{"UserEmail": "a@b.com"},
			Intent: Intent{
				Name: "WiFiIssue",
				Slots: map[string]*Slot{
					"LocationType": {Value: &SlotValue{InterpretedValue: "library"}},
					"UserEmail":    nil,
				},
			},
		},
	}

	turn := ParseEvent(ev, testConfig())
	if turn.Intent != "WiFiIssue" || turn.Location != "library" || turn.Email != "" {
		t.Fatalf("unexpected turn: %+v", turn)
	}
	if turn.SessionAttributes["UserEmail"] != "a@b.com" {
		t.Fatalf("session attributes not carried: %#v", turn.SessionAttributes)
	}
}

func TestParseEventCopiesAttributeMap(t *testing.T) {
	attrs := map[string]string{"UserEmail": "a@b.com"}
	ev := Event{SessionState: SessionState{SessionAttributes: attrs}}

	turn := ParseEvent(ev, testConfig())
	turn.SessionAttributes["UserEmail"] = "mutated@b.com"
	if attrs["UserEmail"] != "a@b.com" {
		t.Fatal("parse must not alias the inbound attribute map")
	}
}
