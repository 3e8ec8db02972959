package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Target is a host drawable: the backing store a Surface draws into.
type Target interface {
	// Width returns the backing store width in device pixels.
	Width() int

	// Height returns the backing store height in device pixels.
	Height() int

	// SetWidth resizes the backing store horizontally.
	SetWidth(width int)

	// SetHeight resizes the backing store vertically.
	SetHeight(height int)

	// Context2D returns the 2D drawing context bound to this target.
	// The same context is returned for the lifetime of the target.
	Context2D() Context2D
}

// PixelHinter is implemented by targets that accept a "pixelated"
// rendering hint for how they are presented.
type PixelHinter interface {
	SetPixelated(pixelated bool)
}

// ImageTarget is implemented by targets whose contents can be read back
// as an image, which lets one surface be drawn onto another.
type ImageTarget interface {
	Image() image.Image
}

// Exporter is implemented by targets that can encode their contents.
type Exporter interface {
	Export(format Format, quality int) ([]byte, error)
}

// Context2D is an immediate-mode 2D drawing context.
type Context2D interface {
	// Save pushes the current drawing state.
	Save()

	// Restore pops the most recently saved drawing state.
	Restore()

	// SetImageSmoothing toggles interpolation when images are scaled.
	SetImageSmoothing(enabled bool)

	// SetTransform replaces the current transform with the affine matrix
	// [a c e; b d f].
	SetTransform(a, b, c, d, e, f float64)

	// Translate moves the origin.
	Translate(x, y float64)

	// Apply copies every property set in props onto the context.
	Apply(props Props)

	// SetFont selects the font in "{size}px {name}" form.
	SetFont(font string)

	// BeginPath discards the current path.
	BeginPath()

	// Rect adds a closed rectangle to the current path.
	Rect(x, y, width, height float64)

	// Fill fills the current path with the fill style.
	Fill()

	// Stroke outlines the current path with the stroke style.
	Stroke()

	// FillPath fills p with the fill style.
	FillPath(p Path)

	// StrokePath outlines p with the stroke style.
	StrokePath(p Path)

	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64)

	// StrokeText outlines text with its baseline starting at (x, y).
	StrokeText(text string, x, y float64)

	// MeasureText measures text in the current font.
	MeasureText(text string) HostTextMetrics

	// DrawImage draws src unscaled with its top-left corner at (dx, dy).
	DrawImage(src image.Image, dx, dy float64)

	// DrawImageScaled draws src scaled into the destination rectangle.
	DrawImageScaled(src image.Image, dx, dy, dw, dh float64)

	// DrawImageRegion draws the source rectangle of src scaled into the
	// destination rectangle.
	DrawImageRegion(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64)

	// ClearRect makes the rectangle fully transparent.
	ClearRect(x, y, width, height float64)
}

// HostTextMetrics is what the host text engine reports for a text run.
type HostTextMetrics struct {
	Width                    float64
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64
	FontBoundingBoxAscent    float64
	FontBoundingBoxDescent   float64
}

// Paint is a fill or stroke source. It has the same shape as gg.Pattern.
type Paint interface {
	ColorAt(x, y int) color.Color
}

// LineCap selects how open stroke ends are drawn. The zero value leaves
// the context unchanged.
type LineCap int

const (
	LineCapUnset LineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

// LineJoin selects how stroke corners are drawn. The zero value leaves
// the context unchanged.
type LineJoin int

const (
	LineJoinUnset LineJoin = iota
	LineJoinMiter
	LineJoinRound
	LineJoinBevel
)

// Props is the transient record that styles write into before a draw call.
// Zero values mean "not set" and are not copied onto the context.
type Props struct {
	FillStyle   Paint
	StrokeStyle Paint
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin
	Dash        []float64
	// Alpha is the global alpha; nil leaves the context unchanged.
	Alpha *float64
	Font  string
}

// HasFill reports whether a fill style was set.
func (p Props) HasFill() bool { return p.FillStyle != nil }

// HasStroke reports whether a stroke style was set.
func (p Props) HasStroke() bool { return p.StrokeStyle != nil }

// FontResolver maps a font name and pixel size to a face.
type FontResolver interface {
	Resolve(name string, size float64) (font.Face, error)
}

// Format specifies an export encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatPDF
)

// String returns the conventional file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}
