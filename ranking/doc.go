// Package ranking scores and ranks processed documents against
// queries.
//
// The engine combines five independently normalized signals into one
// composite score per candidate document:
//
//   - text relevance: BM25 over stemmed tokens and corpus statistics
//   - recency: half-life decay of document age
//   - popularity: bounded log transform of the community score
//   - engagement: bounded log transform of the comment count
//   - relevance: a pluggable semantic-similarity strategy, reserved
//     for future use (weight defaults to zero)
//
// Each signal lands in [0,1] before weighting, so the weights in
// [Config] are directly comparable in magnitude. Ranking order is
// composite score descending, ties broken by recency and then by
// document ID, so identical inputs always produce identical output.
//
// The engine is built-then-queried: [Engine.Index] installs a corpus
// for the current collection cycle, after which concurrent
// [Engine.Search] calls are safe. The engine performs no I/O.
package ranking
