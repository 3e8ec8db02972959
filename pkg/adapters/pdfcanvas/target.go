// Package pdfcanvas provides a vector drawing target that renders into a
// single-page PDF document using gofpdf.
//
// One device pixel maps to one PDF point. Paints are sampled at their
// origin, so patterns render as their first color.
package pdfcanvas

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/mosaic/pkg/ports"
)

// FontData supplies raw TrueType data for font names.
type FontData interface {
	Data(name string) ([]byte, bool)
}

// Target implements ports.Target on a gofpdf document.
type Target struct {
	pdf      *gofpdf.Fpdf
	width    int
	height   int
	ctx      *Context
	fonts    FontData
	families map[string]string
	images   int
	created  time.Time
}

// Option configures a Target.
type Option func(*Target)

// WithFonts sets where UTF-8 font data is looked up. Without it, or for
// names it does not know, the PDF core fonts are used.
func WithFonts(f FontData) Option {
	return func(t *Target) {
		t.fonts = f
	}
}

// WithCreationDate fixes the document creation date, which makes output
// reproducible.
func WithCreationDate(tm time.Time) Option {
	return func(t *Target) {
		t.created = tm
	}
}

// New creates a blank single-page document of the given size.
func New(width, height int, opts ...Option) *Target {
	t := &Target{width: clampSize(width), height: clampSize(height)}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	t.ctx = newContext(t)
	return t
}

// reset starts a new document, discarding everything drawn.
func (t *Target) reset() {
	size := gofpdf.SizeType{Wd: pageSize(t.width), Ht: pageSize(t.height)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("mosaic", false)
	if !t.created.IsZero() {
		pdf.SetCreationDate(t.created)
	}
	pdf.AddPageFormat("P", size)

	t.pdf = pdf
	t.families = make(map[string]string)
	t.images = 0
}

// Width returns the page width in points.
func (t *Target) Width() int { return t.width }

// Height returns the page height in points.
func (t *Target) Height() int { return t.height }

// SetWidth starts a new document with the new width.
func (t *Target) SetWidth(width int) {
	t.width = clampSize(width)
	t.reset()
}

// SetHeight starts a new document with the new height.
func (t *Target) SetHeight(height int) {
	t.height = clampSize(height)
	t.reset()
}

// Context2D returns the drawing context bound to this target.
func (t *Target) Context2D() ports.Context2D { return t.ctx }

// Export writes the document. Only ports.FormatPDF is supported. The
// document is closed afterwards; resize the target to draw again.
func (t *Target) Export(format ports.Format, quality int) ([]byte, error) {
	if format != ports.FormatPDF {
		return nil, fmt.Errorf("unsupported vector format: %s", format)
	}
	var buf bytes.Buffer
	if err := t.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Err returns the first error recorded by the document, if any.
func (t *Target) Err() error {
	return t.pdf.Error()
}

// pageSize keeps degenerate pages valid.
func pageSize(n int) float64 {
	if n < 1 {
		return 1
	}
	return float64(n)
}

func clampSize(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

var (
	_ ports.Target   = (*Target)(nil)
	_ ports.Exporter = (*Target)(nil)
)
