// Package observability provides structured logging, metrics, and tracing
// for classfinder scans.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds scan context to a logger.
// Returns a new logger with registry and scan_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "handlers", "scan-123")
//	enriched.Info("scanning") // includes registry, scan_id
func EnrichLogger(logger *slog.Logger, registry, scanID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("registry", registry),
		slog.String("scan_id", scanID),
	)
}

// LogScanStart logs the start of a populate or reload scan.
func LogScanStart(logger *slog.Logger, path string) {
	if logger == nil {
		return
	}
	logger.Debug("index scan starting",
		slog.String("path", path),
	)
}

// LogScanComplete logs a finished scan.
func LogScanComplete(logger *slog.Logger, resources, classes int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("index scan completed",
		slog.Int("resources", resources),
		slog.Int("classes", classes),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogScanError logs a fatal scan failure.
func LogScanError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("index scan failed",
		slog.String("error", err.Error()),
	)
}

// LogEmptyIndex logs that no index resources exist for a registry name.
// Non-fatal: the snapshot becomes empty.
func LogEmptyIndex(logger *slog.Logger, path string) {
	if logger == nil {
		return
	}
	logger.Warn("no index resources found",
		slog.String("path", path),
	)
}

// LogUnresolvedName logs a listed name that could not be resolved.
// Non-fatal: the entry is skipped.
func LogUnresolvedName(logger *slog.Logger, origin, name string) {
	if logger == nil {
		return
	}
	logger.Warn("unable to resolve type, skipping it",
		slog.String("origin", origin),
		slog.String("type", name),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
