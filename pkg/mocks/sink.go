package mocks

import (
	"image"
	"sync"

	"github.com/user/mosaic/pkg/ports"
)

// Snapshot is one image captured by DebugSink.
type Snapshot struct {
	Index int
	Op    string
	Image image.Image
}

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	ScriptJSON []byte
	Snapshots  []Snapshot

	SaveSnapshotFunc func(index int, op string, img image.Image) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveScriptJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScriptJSON = data
	return nil
}

func (m *DebugSink) SaveSnapshot(index int, op string, img image.Image) error {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(index, op, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots = append(m.Snapshots, Snapshot{Index: index, Op: op, Image: img})
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
