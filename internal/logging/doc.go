// Package logging assembles the structured slog loggers used across the
// jukebox packages.
//
// It centralizes level and format plumbing, exposes small Attr helpers so
// call sites stay terse, and provides a no-op logger for tests and wiring
// code that cannot fail. Component loggers tag every line with the
// subsystem that emitted it.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
