package i

// Logger defines the leveled logging methods subsystems depend on.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warning logs a warning message.
	Warning(msg string)

	// Error logs an error message.
	Error(msg string)
}
