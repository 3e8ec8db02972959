package pipeline

import (
	"image/color"

	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
	"github.com/user/mosaic/pkg/textlayout"
)

// =============================================================================
// Draw Stage Types
// =============================================================================

// SurfaceDefaults fills in what a script's surface section leaves out.
type SurfaceDefaults struct {
	Width       int
	Height      int
	ScaleFactor float64
	Resizable   bool
	Scalable    bool
	Background  color.Color // nil leaves the surface transparent
}

// DefaultSurface returns SurfaceDefaults with default values.
func DefaultSurface() SurfaceDefaults {
	return SurfaceDefaults{
		Width:       640,
		Height:      480,
		ScaleFactor: 1,
	}
}

// DefaultText returns the text options used when an op names no font.
func DefaultText() textlayout.Options {
	return textlayout.Options{
		FontName:   "sans-serif",
		FontSize:   16,
		LineHeight: 20,
	}
}

// DrawInput contains a script and the target it is drawn on.
type DrawInput struct {
	Script   script.Document
	Target   ports.Target
	Surface  SurfaceDefaults
	Text     textlayout.Options
	AssetDir string // image paths in the script are relative to this
}

// DrawResult contains the surface after every op has run.
type DrawResult struct {
	Surface *drawing.Surface
	OpCount int
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput contains the target to encode.
type ExportInput struct {
	Target  ports.Target
	Format  ports.Format
	Quality int // JPEG quality (1-100)
}

// ExportResult contains the encoded output.
type ExportResult struct {
	Data   []byte
	Format ports.Format
}
