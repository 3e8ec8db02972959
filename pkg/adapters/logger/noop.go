package logger

import "github.com/user/mosaic/pkg/ports"

// NoopLogger discards every message. It backs --quiet renders and is the
// default for surfaces and viewports created without WithLogger.
type NoopLogger struct{}

// NewNoop returns a logger that drops everything.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{})  {}
func (l *NoopLogger) Warn(msg string, args ...interface{})  {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns l; there is nothing to tag.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}

var _ ports.Logger = (*NoopLogger)(nil)
