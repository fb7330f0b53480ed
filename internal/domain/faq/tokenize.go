package faq

import "strings"

const punctuationCutset = `.,?!"'()[]{}:;`

// Tokenize lower-cases text, splits it on whitespace, strips surrounding
// punctuation from each word and returns the distinct survivors. Empty input
// yields an empty set, never an error.
func Tokenize(text string) TokenSet {
	tokens := make(TokenSet)
	if text == "" {
		return tokens
	}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, punctuationCutset)
		if word == "" {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}
