// Package logging provides structured logging for the formdlg tool.
//
// This package wraps zap logger with convenience functions for common
// logging patterns used throughout the module. Logging is silent unless
// the user asks for it, so dialogs and printed results stay clean.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (spec loading, dialog lifecycle)
//   - Info: Normal operations (command runs, file writes)
//   - Warn: Non-fatal issues (discarded answer files, fallbacks)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("showing dialog",
//	    zap.String("title", spec.Title),
//	    zap.Int("fields", len(spec.Fields)),
//	)
//
// # Configuration
//
// Logging is controlled by the FORMDLG_LOG_LEVEL environment variable
// (debug, info, warn, error). Commands initialize it at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stderr in console format (human-readable), so an
// enabled logger never corrupts a dialog being rendered on stdout:
//
//	2025-11-25T10:30:45.123-0800  DEBUG  showing dialog
//	  title=Repository Settings
//	  fields=9
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
