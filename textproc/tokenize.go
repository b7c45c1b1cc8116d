package textproc

import "unicode"

// Tokenize splits s into word tokens. Alphanumeric runs (letters and
// digits mixed, so "test123" is one token) form tokens; whitespace and
// punctuation are boundaries and are discarded. Each token's Position
// is the byte offset of its first byte in s, and its Stem is set to
// Text verbatim; stemming is a separate, later stage. Empty input
// yields an empty sequence, never an error.
func Tokenize(s string) []Token {
	var tokens []Token
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		text := s[start:end]
		tokens = append(tokens, Token{Text: text, Position: start, Stem: text})
		start = -1
	}

	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))

	return tokens
}
