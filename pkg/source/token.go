package source

import "strings"

// Token types produced by tokenizers. The behaviour engine only inspects
// TokenString, TokenComment and TokenText; the rest are informational.
const (
	TokenText         = "text"
	TokenString       = "string"
	TokenComment      = "comment"
	TokenKeyword      = "keyword"
	TokenPreprocessor = "preprocessor"
	TokenPunctuation  = "punctuation"
)

// Token is a classified span of a single line.
// A line's tokens are contiguous: their values concatenate to the line.
type Token struct {
	// Type classifies the span (e.g. "string", "comment", "text").
	Type string

	// Value is the literal text of the span.
	Value string
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return len(t.Value)
}

// IsEmpty returns true if the token has no text.
func (t Token) IsEmpty() bool {
	return t.Value == ""
}

// Join concatenates token values back into the line they were cut from.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return b.String()
}

// ValidateTokens checks that tokens reconstruct line exactly.
func ValidateTokens(tokens []Token, line string) bool {
	if len(tokens) == 0 {
		return line == ""
	}
	return Join(tokens) == line
}

// TokenAt returns the index of the token covering column col and the column
// at which that token starts. It returns -1 when col is past the line.
func TokenAt(tokens []Token, col int) (int, int) {
	start := 0
	for idx, tok := range tokens {
		if start+tok.Len() > col {
			return idx, start
		}
		start += tok.Len()
	}
	return -1, start
}
