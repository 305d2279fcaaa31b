// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Entity tagging
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Config{Level: slog.LevelInfo, Format: logging.FormatText})
//	ctx := logging.WithLogger(context.Background(), logger)
//	logging.FromContext(ctx).Info("catalog ready")
package logging
