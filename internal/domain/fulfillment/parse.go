package fulfillment

// Turn is the fully-defaulted view of one inbound event. Every field is
// populated: missing wire fields become empty strings or an empty map, so the
// rest of the turn never has to null-check the engine payload.
type Turn struct {
	Text              string
	Intent            string
	Location          string
	Email             string
	SessionAttributes map[string]string
}

// ParseEvent flattens the wire event into a Turn. This is the single place
// that handles absent fields; defaulting rules live here and nowhere else.
func ParseEvent(ev Event, cfg Config) Turn {
	turn := Turn{
		Text:              ev.InputTranscript,
		Intent:            ev.SessionState.Intent.Name,
		SessionAttributes: make(map[string]string, len(ev.SessionState.SessionAttributes)),
	}
	if turn.Text == "" {
		// Some channels deliver the utterance in the legacy field.
		turn.Text = ev.Message
	}
	if turn.Intent == "" {
		turn.Intent = cfg.FallbackIntent
	}
	for k, v := range ev.SessionState.SessionAttributes {
		turn.SessionAttributes[k] = v
	}
	turn.Location = slotValue(ev.SessionState.Intent.Slots, cfg.LocationSlot)
	turn.Email = slotValue(ev.SessionState.Intent.Slots, cfg.EmailSlot)
	return turn
}

func slotValue(slots map[string]*Slot, name string) string {
	slot, ok := slots[name]
	if !ok || slot == nil || slot.Value == nil {
		return ""
	}
	return slot.Value.InterpretedValue
}
