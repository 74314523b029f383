// Package logging assembles structured slog loggers and formatting helpers used
// across langprep.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes helpers so every line a command emits carries the
// component that produced it and the run_id of the invocation. Per-component
// level overrides let a single package log at debug while the rest of the
// process stays at info. NewNop provides a logger for tests and for library
// code that was handed no logger at all.
package logging
