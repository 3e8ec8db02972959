package ports

import (
	"image"
)

// DebugSink receives intermediate render results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveScriptJSON saves the validated draw script as JSON.
	SaveScriptJSON(data []byte) error

	// SaveSnapshot saves the surface contents after the op at index.
	SaveSnapshot(index int, op string, img image.Image) error
}
