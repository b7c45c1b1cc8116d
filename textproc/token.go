package textproc

// Token is a single word token produced by Tokenize.
//
// Tokens are immutable once produced: later pipeline stages return new
// slices with new values rather than mutating in place.
type Token struct {
	// Text is the original surface form, case preserved.
	Text string

	// Position is the byte offset of the token's first byte in the
	// string passed to Tokenize. It is assigned once and never
	// recomputed by later stages.
	Position int

	// Stem is the normalized root form. It equals Text until
	// StemTokens runs, after which it holds the lower-cased Porter
	// root.
	Stem string
}

// ProcessedDocument is the indexable form of a single post. It is
// created once per processing run and owned by whichever index build
// consumes it.
type ProcessedDocument struct {
	// DocID is the source post's ID.
	DocID string

	// Tokens is the ordered token sequence after stopword removal
	// and stemming.
	Tokens []Token

	// TokenCount is len(Tokens), the document length used for BM25
	// length normalization.
	TokenCount int
}
