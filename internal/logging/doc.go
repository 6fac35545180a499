// Package logging constructs the process-wide slog logger. Console output is
// a compact human format; JSON output is one object per line for machine
// consumption. Log files are appended under the configured log directory.
package logging
