// Package pipeline wires the full fingerprint and discovery runs: preflight,
// history loading, catalog streaming, scoring, artifact writing, and the run
// ledger. Commands stay thin on top of it.
package pipeline
