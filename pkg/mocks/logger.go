package mocks

import (
	"fmt"
	"sync"

	"github.com/user/mosaic/pkg/ports"
)

// LogEntry is one message captured by Logger.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a mock implementation of ports.Logger that records every
// message, formatted, regardless of level.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates a new mock Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.log(ports.LevelDebug, msg, args...) }
func (m *Logger) Info(msg string, args ...interface{})  { m.log(ports.LevelInfo, msg, args...) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.log(ports.LevelWarn, msg, args...) }
func (m *Logger) Error(msg string, args ...interface{}) { m.log(ports.LevelError, msg, args...) }

// WithComponent returns a logger sharing this logger's entries.
func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: m.mu, entries: m.entries, component: component}
}

func (m *Logger) log(level ports.LogLevel, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:     level,
		Component: m.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns a copy of the recorded messages.
func (m *Logger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), *m.entries...)
}

// Count returns the number of messages recorded at level.
func (m *Logger) Count(level ports.LogLevel) int {
	n := 0
	for _, e := range m.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

var _ ports.Logger = (*Logger)(nil)
