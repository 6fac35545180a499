// Package runs persists a ledger of pipeline runs in SQLite so past
// fingerprint and discovery executions can be reviewed: when they ran, how
// many records they counted, what they emitted, and where the artifact went.
package runs
