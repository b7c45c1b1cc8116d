// Package textproc implements the document processing pipeline that
// turns raw Reddit posts into indexable token streams.
//
// The pipeline is a sequence of free functions over token slices:
//
//	CleanHTML -> NormalizeCase -> Tokenize -> RemoveStopwords -> StemTokens
//
// Each stage returns a new value and never mutates its input, so stages
// compose freely and partial pipelines are usable on their own (the
// ranking engine runs the same stages over query strings).
//
// # Tokens
//
// A [Token] carries its original surface form, the byte offset of its
// first byte in the string handed to [Tokenize], and a stem. The
// position is assigned once at tokenization and survives stopword
// removal and stemming unchanged, which lets snippet extraction map
// stems back into the source text.
//
// # Robustness
//
// Upstream content is uncurated, so no stage fails on malformed input.
// Empty or absent input degrades to an empty string or empty slice.
// [Processor.ProcessBatch] isolates per-document validation failures
// and continues with the remaining documents.
//
// # Stemming
//
// StemTokens applies the classic Porter algorithm (via
// blevesearch/go-porterstemmer), so reductions follow the published
// rule cascade: "running" -> "run", "flies" -> "fli", "fairly" ->
// "fairli". Words already at their root come back lower-cased and
// otherwise unchanged.
package textproc
