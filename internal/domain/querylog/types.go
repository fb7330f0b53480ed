package querylog

// Record is one immutable row of the query audit log. Rows are appended once
// per resolved turn and never updated or deleted by this service.
type Record struct {
	ID           string `json:"query_id"`
	QueryText    string `json:"query_text"`
	Timestamp    int64  `json:"timestamp"`
	MatchedFAQID string `json:"matched_faq_id"`
	MatchScore   int    `json:"match_score"`
	SentToHuman  bool   `json:"sent_to_human"`
	Location     string `json:"location,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
}

// Input carries the per-turn outcome the orchestrator wants persisted.
// ID and Timestamp are stamped by the Recorder.
type Input struct {
	QueryText    string
	MatchedFAQID string
	MatchScore   int
	SentToHuman  bool
	Location     string
	UserEmail    string
}

// TrendingQuery is one frequently-unanswered question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
