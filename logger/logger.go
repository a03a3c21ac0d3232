// Package logger provides a small prefixed, colored, leveled logger used
// across the application. Each subsystem creates its own instance with a
// distinct prefix and ANSI color so interleaved output stays readable.
package logger

import (
	"errors"
	"io"
	"log"
)

// Level colors.
const (
	logErrorColor = "\033[31m"
	logInfoColor  = "\033[32m"
	logWarnColor  = "\033[33m"
	colorReset    = "\033[0m"
)

// Subsystem prefix colors.
const (
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
)

// Logger writes leveled log lines with a fixed subsystem prefix.
type Logger struct {
	prefix string
	color  string
	l      *log.Logger
}

// New creates a Logger writing to out with the given prefix and ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		l:      log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (lg *Logger) Info(msg string) {
	lg.print(logInfoColor, "INFO", msg)
}

// Warning logs a warning message.
func (lg *Logger) Warning(msg string) {
	lg.print(logWarnColor, "WARN", msg)
}

// Error logs an error message.
func (lg *Logger) Error(msg string) {
	lg.print(logErrorColor, "ERROR", msg)
}

func (lg *Logger) print(levelColor, level, msg string) {
	lg.l.Printf("%s[%s]%s %s[%s]%s %s",
		lg.color, lg.prefix, colorReset,
		levelColor, level, colorReset,
		msg)
}
