// Package fingerprint learns the weighted motif lexicon that distinguishes
// the user's liked films from a baseline sample of the catalog.
//
// The estimator is a smoothed log-odds ratio. Each motif's score compares how
// often it appears in liked films against the baseline; positive scores mark
// motifs disproportionately associated with liked films. Motifs must clear a
// liked-frequency floor and span multiple directors to enter the lexicon,
// which suppresses single-film and single-auteur artifacts.
//
// The baseline is the documented "head sample" policy: the first N non-liked
// records in stream order. Once the cap is reached baseline accumulation
// stops for good, while liked accumulation continues to the end of the
// stream.
package fingerprint
