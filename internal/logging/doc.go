// Package logging provides structured logging for the wizard.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the wizard. Because the wizard owns the whole screen,
// logging is silent unless explicitly enabled.
//
// # Configuration
//
// Logging is controlled via the OBSIDIAN_WIZARD_LOG_LEVEL environment
// variable (or the --log-level flag). When unset or empty, zap logging is
// a nop, allowing the full-screen frames to be displayed cleanly. Set it to
// "debug", "info", "warn", or "error" to enable console output on stderr:
//
//	OBSIDIAN_WIZARD_LOG_LEVEL=debug obsidian-wizard 2>wizard.log
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("external command",
//	    zap.Strings("argv", argv),
//	    zap.String("event", "start"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
