// Package logging builds the slog loggers used across the commerce tooling.
// Records are JSON by default; the text format is meant for interactive CLI use.
package logging
