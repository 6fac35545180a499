// Package textkit provides the text primitives for taste fingerprinting:
// title normalization, tokenization, and motif (n-gram) extraction.
//
// The primary use cases are:
//   - Collapsing a title to a canonical identity key for cross-dataset matching
//   - Splitting free text into lowercase word tokens
//   - Extracting the set of 1-3 word motifs a record's text contains
//
// Normalization is intentionally aggressive: everything outside [a-z0-9] is
// removed so that near-identical titles from different sources merge. Motif
// extraction returns a set, so a record contributes each motif at most once
// regardless of how often the phrase repeats in its text.
package textkit
