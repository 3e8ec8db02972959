// Package ports defines the boundaries between the drawing core and its hosts.
package ports

import "fmt"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-call drawing diagnostics.
	LevelDebug LogLevel = iota
	// LevelInfo is for orchestration progress.
	LevelInfo
	// LevelWarn is for recoverable problems such as a missing font.
	LevelWarn
	// LevelError is for failures that abort a render.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name. Unknown names yield LevelInfo and an error.
func ParseLogLevel(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "quiet":
		return LevelQuiet, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger abstracts logging with translatable message keys.
type Logger interface {
	// Debug logs a debug message. msg is a translatable format key.
	Debug(msg string, args ...interface{})

	// Info logs an informational message.
	Info(msg string, args ...interface{})

	// Warn logs a recoverable problem.
	Warn(msg string, args ...interface{})

	// Error logs a failure.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with component.
	WithComponent(component string) Logger
}
