package textproc

import "strings"

// stopwords is the fixed closed-class word list: articles, common
// prepositions, pronouns and auxiliary verbs. These carry almost no
// ranking signal and would otherwise dominate term frequencies.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "being": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {},
	"for": {}, "from": {}, "had": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "him": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "me": {}, "my": {}, "no": {}, "nor": {}, "not": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "to": {},
	"too": {}, "was": {}, "we": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "why": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {},
}

// RemoveStopwords returns the tokens whose Text, compared
// case-insensitively, is not in the stopword list. The comparison is
// on Text, not Stem. Surviving tokens keep their original Position
// values; nothing is renumbered, so RemoveStopwords is idempotent.
func RemoveStopwords(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	kept := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopwords[strings.ToLower(tok.Text)]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// IsStopword reports whether word, compared case-insensitively, is in
// the stopword list.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
