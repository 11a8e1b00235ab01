// Package errors provides the structured error type used by the command
// runner and config loader.
//
// A StructuredError carries an ErrorCode that callers switch on instead of
// matching message text, and implements slog.LogValuer so its details land
// in the JSON log as a group:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "command timed out",
//	    ctx.Err(),
//	    map[string]any{
//	        "command": "/usr/bin/top -l 1 -n 0",
//	        "timeout": "5s",
//	    },
//	)
//	slog.Debug("command failed", "error", err)
//
// CodeOf extracts the code from anywhere in a wrapped chain.
package errors
