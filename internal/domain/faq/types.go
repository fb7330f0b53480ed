package faq

// Entry is one knowledge-base question/answer record. Entries are owned by
// the content-management tooling; this service only reads them.
type Entry struct {
	ID       string   `yaml:"id" json:"faq_id"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Answer   string   `yaml:"answer" json:"answer"`
}

// TokenSet holds the distinct normalized words of one query.
type TokenSet map[string]struct{}

// Contains reports membership, mostly for tests.
func (s TokenSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
