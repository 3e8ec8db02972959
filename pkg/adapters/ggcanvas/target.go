// Package ggcanvas provides a raster drawing target using the gg library.
package ggcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/mosaic/pkg/ports"
)

// Target implements ports.Target on an in-memory RGBA image.
type Target struct {
	dc        *gg.Context
	ctx       *Context
	fonts     ports.FontResolver
	pixelated bool
}

// Option configures a Target.
type Option func(*Target)

// WithFonts sets the resolver used for SetFont. Without one, every font
// resolves to the 7x13 bitmap face.
func WithFonts(r ports.FontResolver) Option {
	return func(t *Target) {
		t.fonts = r
	}
}

// New creates a transparent target of the given size.
func New(width, height int, opts ...Option) *Target {
	t := &Target{dc: gg.NewContext(clampSize(width), clampSize(height))}
	for _, opt := range opts {
		opt(t)
	}
	t.ctx = newContext(t)
	return t
}

// NewFromImage creates a target initialized with a copy of img.
func NewFromImage(img image.Image, opts ...Option) *Target {
	b := img.Bounds()
	t := New(b.Dx(), b.Dy(), opts...)
	draw.Draw(t.dc.Image().(*image.RGBA), t.dc.Image().Bounds(), img, b.Min, draw.Src)
	return t
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.dc.Width() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.dc.Height() }

// SetWidth reallocates the target. Contents are discarded; drawing state
// is kept.
func (t *Target) SetWidth(width int) {
	t.resize(width, t.Height())
}

// SetHeight reallocates the target. Contents are discarded; drawing state
// is kept.
func (t *Target) SetHeight(height int) {
	t.resize(t.Width(), height)
}

func (t *Target) resize(width, height int) {
	t.dc = gg.NewContext(clampSize(width), clampSize(height))
	t.ctx.sync()
}

// Context2D returns the drawing context bound to this target.
func (t *Target) Context2D() ports.Context2D { return t.ctx }

// Image returns the backing image. It aliases the target's pixels.
func (t *Target) Image() image.Image { return t.dc.Image() }

// SetPixelated records the presentation hint.
func (t *Target) SetPixelated(pixelated bool) { t.pixelated = pixelated }

// Pixelated reports the presentation hint.
func (t *Target) Pixelated() bool { return t.pixelated }

// Export encodes the target contents.
func (t *Target) Export(format ports.Format, quality int) ([]byte, error) {
	return EncodeImage(t.dc.Image(), format, quality)
}

// EncodeImage encodes an image to the specified raster format.
func EncodeImage(img image.Image, format ports.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported raster format: %s", format)
	}

	return buf.Bytes(), nil
}

// DecodeImage decodes PNG or JPEG data.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func clampSize(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

var (
	_ ports.Target      = (*Target)(nil)
	_ ports.PixelHinter = (*Target)(nil)
	_ ports.ImageTarget = (*Target)(nil)
	_ ports.Exporter    = (*Target)(nil)
)
