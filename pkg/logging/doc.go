// Package logging provides structured logging utilities for driftmon.
//
// # Overview
//
// This package wraps the standard library slog package with driftmon defaults
// so the CLI, the sampling loop and the command runner log in one consistent
// format. It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-command timings, raw parser fallbacks, with source location
//   - INFO: refresh results and lifecycle messages (default)
//   - WARN/WARNING: degraded measurements, e.g. a command that failed
//   - ERROR: failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("driftmon", "v1.0.0", "debug")
//	slog.Info("refresh complete", "score", 87)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is given:
//
//	LOG_LEVEL=debug driftmon watch
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "refresh complete",
//	    "module": "driftmon",
//	    "version": "v1.0.0",
//	    "score": 87
//	}
package logging
