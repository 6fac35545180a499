// Package catalog reads newline-delimited JSON film records and provides the
// identity primitives used to deduplicate them within a run.
//
// Records are decoded defensively: a missing or unparsable year becomes 0,
// missing text fields become empty strings, and missing lists become empty
// slices. A line that cannot be decoded at all is skipped and counted rather
// than aborting the stream.
package catalog
