// Package logging assembles the structured slog loggers used by the CLI.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attr helper aliases so callers do not import slog directly. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
