package textproc

import (
	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// StemTokens computes the Porter root of each token's lower-cased Text
// and writes it into Stem, returning a new slice. Text and Position are
// left untouched. Words already at their root come back lower-cased and
// otherwise unchanged.
func StemTokens(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	stemmed := make([]Token, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = Token{
			Text:     tok.Text,
			Position: tok.Position,
			Stem:     StemWord(tok.Text),
		}
	}
	return stemmed
}

// StemWord returns the classic Porter stem of word. The stemmer
// lower-cases before applying the suffix-stripping steps, so the
// result is always lower-case.
func StemWord(word string) string {
	if word == "" {
		return ""
	}
	return porterstemmer.StemString(word)
}
