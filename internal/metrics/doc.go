// Package metrics provides pure text analysis functions: structural counts
// (characters, words, sentences, paragraphs), classified counts (vowels,
// consonants, digits, case, punctuation, whitespace), frequency analysis
// with deterministic first-seen tie-breaking, and Unicode-correct logical
// length over extended grapheme clusters.
//
// Every function scans its input once (or a small fixed number of passes),
// allocates its own working state, and shares nothing across calls, so all
// functions are safe for arbitrary concurrent use.
//
// Empty or whitespace-only input is never an error: counts come back zero
// and frequency queries come back empty.
package metrics
