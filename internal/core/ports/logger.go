// Package ports defines the core interfaces for the application.
package ports

// Logger is the logging abstraction used across the application.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// SetVerbose toggles debug-level output.
	SetVerbose(enable bool)

	// Debug logs a message only visible in verbose mode.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, unwrapping cause chains where possible.
	Error(err error)
}
