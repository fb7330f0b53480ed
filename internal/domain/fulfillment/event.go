package fulfillment

// Wire shapes of the dialog-engine webhook contract (Lex V2). Field names
// must match the engine exactly; do not rename.

// Event is the inbound request for one conversation turn.
type Event struct {
	InputTranscript string       `json:"inputTranscript"`
	Message         string       `json:"message,omitempty"`
	SessionState    SessionState `json:"sessionState"`
}

// SessionState carries the intent and the per-conversation attribute map.
type SessionState struct {
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
	Intent            Intent            `json:"intent"`
}

// Intent names the recognized user goal and its extracted slots.
type Intent struct {
	Name  string           `json:"name"`
	State string           `json:"state,omitempty"`
	Slots map[string]*Slot `json:"slots,omitempty"`
}

// Slot wraps one extracted slot value.
type Slot struct {
	Value *SlotValue `json:"value,omitempty"`
}

// SlotValue holds the engine's interpretation of the user's words.
type SlotValue struct {
	InterpretedValue string `json:"interpretedValue"`
}

// DialogAction tells the engine what to do next; this service always closes.
type DialogAction struct {
	Type string `json:"type"`
}

// ResponseMessage is one message shown to the user.
type ResponseMessage struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Response is the reply returned to the dialog engine.
type Response struct {
	SessionState SessionState      `json:"sessionState"`
	Messages     []ResponseMessage `json:"messages"`
}

// FallbackResponse is the degraded reply for turns that could not complete:
// the user still receives the fixed apology and the session state rides
// along unchanged.
func FallbackResponse(ev Event, cfg Config) Response {
	return closeResponse(ParseEvent(ev, cfg), cfg.ApologyMessage)
}

func closeResponse(turn Turn, text string) Response {
	return Response{
		SessionState: SessionState{
			SessionAttributes: turn.SessionAttributes,
			DialogAction:      &DialogAction{Type: "Close"},
			Intent:            Intent{Name: turn.Intent, State: "Fulfilled"},
		},
		Messages: []ResponseMessage{{ContentType: "PlainText", Content: text}},
	}
}
