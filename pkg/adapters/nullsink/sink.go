// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/mosaic/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveScriptJSON does nothing.
func (s *Sink) SaveScriptJSON(data []byte) error {
	return nil
}

// SaveSnapshot does nothing.
func (s *Sink) SaveSnapshot(index int, op string, img image.Image) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
