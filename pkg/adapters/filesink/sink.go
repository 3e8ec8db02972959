// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"regexp"

	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/ports"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Sink saves the validated script and per-op snapshots under baseDir.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{baseDir: baseDir, fs: fs}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveScriptJSON saves the validated draw script as script.json.
func (s *Sink) SaveScriptJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "script.json"), data)
}

// SaveSnapshot saves the surface after the op at index as
// snapshots/NNNN-op.png.
func (s *Sink) SaveSnapshot(index int, op string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "snapshots")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	data, err := ggcanvas.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode snapshot %d: %w", index, err)
	}

	name := fmt.Sprintf("%04d-%s.png", index, unsafeChars.ReplaceAllString(op, "_"))
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

var _ ports.DebugSink = (*Sink)(nil)
