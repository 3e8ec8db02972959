package logger

import "github.com/user/mosaic/pkg/ports"

// TeeLogger forwards every message to several loggers.
type TeeLogger struct {
	loggers []ports.Logger
}

// NewTee creates a logger writing to all of loggers. Nil entries are
// skipped.
func NewTee(loggers ...ports.Logger) *TeeLogger {
	t := &TeeLogger{}
	for _, l := range loggers {
		if l != nil {
			t.loggers = append(t.loggers, l)
		}
	}
	return t
}

// Debug logs a debug message.
func (t *TeeLogger) Debug(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Debug(msg, args...)
	}
}

// Info logs an informational message.
func (t *TeeLogger) Info(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Info(msg, args...)
	}
}

// Warn logs a warning message.
func (t *TeeLogger) Warn(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Warn(msg, args...)
	}
}

// Error logs an error message.
func (t *TeeLogger) Error(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Error(msg, args...)
	}
}

// WithComponent returns a tee of the component loggers.
func (t *TeeLogger) WithComponent(component string) ports.Logger {
	next := &TeeLogger{loggers: make([]ports.Logger, len(t.loggers))}
	for i, l := range t.loggers {
		next.loggers[i] = l.WithComponent(component)
	}
	return next
}
