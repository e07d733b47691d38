// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/mongosession/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("sessiongc"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(
//		logger.WithProduction("sessiongc"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("sweep completed",
//		logger.Component("sweeper"),
//		logger.Count("removed", 12),
//	)
//
// Libraries in this module accept a *slog.Logger through options and default to
// Discard, so nothing is printed unless the application wires a logger in.
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Error("read failed", logger.Error(err), logger.SessionID(id))
//
// Available helpers: Group, Error, Errors, Duration, Elapsed, SessionID,
// Database, Collection, Component, Event, Action, Count, Key, RetryCount.
package logger
