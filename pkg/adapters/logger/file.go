package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/user/mosaic/pkg/ports"
)

// FileLogger appends untranslated, timestamped lines to a log file that is
// rotated by size.
type FileLogger struct {
	level     ports.LogLevel
	component string
	sink      *fileSink
}

type fileSink struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewFile creates a logger writing to path. Files rotate at 10 MB and the
// three most recent backups are kept for 28 days.
func NewFile(path string, level ports.LogLevel) *FileLogger {
	return newFileLogger(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}, level)
}

func newFileLogger(w io.Writer, level ports.LogLevel) *FileLogger {
	return &FileLogger{
		level: level,
		sink:  &fileSink{w: w, now: time.Now},
	}
}

// Debug logs a debug message.
func (l *FileLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args...) }

// Info logs an informational message.
func (l *FileLogger) Info(msg string, args ...interface{}) { l.log(ports.LevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *FileLogger) Warn(msg string, args ...interface{}) { l.log(ports.LevelWarn, msg, args...) }

// Error logs an error message.
func (l *FileLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args...) }

// WithComponent returns a logger sharing the same file.
func (l *FileLogger) WithComponent(component string) ports.Logger {
	return &FileLogger{level: l.level, component: component, sink: l.sink}
}

// Close closes the underlying file.
func (l *FileLogger) Close() error {
	if c, ok := l.sink.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (l *FileLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	var b strings.Builder
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	b.WriteString(l.sink.now().UTC().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(level.String()))
	if l.component != "" {
		fmt.Fprintf(&b, " [%s]", l.component)
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, msg, args...)
	b.WriteByte('\n')
	io.WriteString(l.sink.w, b.String())
}
