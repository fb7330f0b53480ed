package metrics

import "sync/atomic"

// TurnCounters tracks fulfillment outcomes for the lifetime of the process.
type TurnCounters struct {
	turns         atomic.Int64
	answered      atomic.Int64
	escalated     atomic.Int64
	notifyFailed  atomic.Int64
	turnsFailed   atomic.Int64
	emailCaptured atomic.Int64
}

// NewTurnCounters constructs a zeroed counter set.
func NewTurnCounters() *TurnCounters {
	return &TurnCounters{}
}

func (c *TurnCounters) Turn()          { c.turns.Add(1) }
func (c *TurnCounters) Answered()      { c.answered.Add(1) }
func (c *TurnCounters) Escalated()     { c.escalated.Add(1) }
func (c *TurnCounters) NotifyFailed()  { c.notifyFailed.Add(1) }
func (c *TurnCounters) TurnFailed()    { c.turnsFailed.Add(1) }
func (c *TurnCounters) EmailCaptured() { c.emailCaptured.Add(1) }

// Snapshot is the JSON shape served by the stats endpoint.
type Snapshot struct {
	Turns          int64 `json:"turns"`
	Answered       int64 `json:"answered"`
	Escalated      int64 `json:"escalated"`
	NotifyFailures int64 `json:"notifyFailures"`
	TurnFailures   int64 `json:"turnFailures"`
	EmailsCaptured int64 `json:"emailsCaptured"`
}

// Snapshot returns a consistent-enough point-in-time copy of the counters.
func (c *TurnCounters) Snapshot() Snapshot {
	return Snapshot{
		Turns:          c.turns.Load(),
		Answered:       c.answered.Load(),
		Escalated:      c.escalated.Load(),
		NotifyFailures: c.notifyFailed.Load(),
		TurnFailures:   c.turnsFailed.Load(),
		EmailsCaptured: c.emailCaptured.Load(),
	}
}
