// Package report persists run artifacts to CSV files, tolerating destination
// contention.
//
// A destination may be held open by a spreadsheet while the user inspects the
// previous run. Saves take an advisory lock beside the destination first;
// when the lock or the write fails, the artifact goes to an alternate
// timestamped filename instead, and every attempt's outcome is logged.
// Computed results are never rolled back by a failed write.
package report
