package pdfcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/draw"

	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/textlayout"
)

// Core font metrics are not exposed by gofpdf; these are typical
// Helvetica proportions.
const (
	coreAscent  = 0.718
	coreDescent = 0.207
)

// matrix is the affine transform [a c e; b d f].
type matrix struct {
	a, b, c, d, e, f float64
}

var identity = matrix{a: 1, d: 1}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// translate returns m with a translation applied in local coordinates.
func (m matrix) translate(x, y float64) matrix {
	m.e, m.f = m.apply(x, y)
	return m
}

// scale is the uniform scale of m, used for line widths and font sizes.
func (m matrix) scale() float64 {
	return math.Sqrt(math.Abs(m.a*m.d - m.b*m.c))
}

type state struct {
	matrix    matrix
	fill      ports.Paint
	stroke    ports.Paint
	lineWidth float64
	lineCap   ports.LineCap
	lineJoin  ports.LineJoin
	dash      []float64
	alpha     float64
	font      string
	family    string
	size      float64
}

func defaultState() state {
	return state{
		matrix:    identity,
		fill:      solid{color.Black},
		stroke:    solid{color.Black},
		lineWidth: 1,
		lineCap:   ports.LineCapButt,
		lineJoin:  ports.LineJoinMiter,
		alpha:     1,
		font:      "10px sans-serif",
		family:    "sans-serif",
		size:      10,
	}
}

// Context implements ports.Context2D by emitting PDF path operators.
type Context struct {
	target *Target
	cur    state
	stack  []state
	path   ports.Path
}

func newContext(t *Target) *Context {
	return &Context{target: t, cur: defaultState()}
}

func (c *Context) pdf() *gofpdf.Fpdf { return c.target.pdf }

// Save pushes the current drawing state.
func (c *Context) Save() {
	saved := c.cur
	saved.dash = append([]float64(nil), c.cur.dash...)
	c.stack = append(c.stack, saved)
}

// Restore pops the most recently saved drawing state.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SetImageSmoothing has no effect; PDF viewers choose interpolation.
func (c *Context) SetImageSmoothing(enabled bool) {}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	c.cur.matrix = matrix{a: a, b: b, c: cc, d: d, e: e, f: f}
}

// Translate moves the origin.
func (c *Context) Translate(x, y float64) {
	c.cur.matrix = c.cur.matrix.translate(x, y)
}

// Apply copies the set fields of props onto the state.
func (c *Context) Apply(props ports.Props) {
	if props.FillStyle != nil {
		c.cur.fill = props.FillStyle
	}
	if props.StrokeStyle != nil {
		c.cur.stroke = props.StrokeStyle
	}
	if props.LineWidth > 0 {
		c.cur.lineWidth = props.LineWidth
	}
	if props.LineCap != ports.LineCapUnset {
		c.cur.lineCap = props.LineCap
	}
	if props.LineJoin != ports.LineJoinUnset {
		c.cur.lineJoin = props.LineJoin
	}
	if props.Dash != nil {
		c.cur.dash = append([]float64(nil), props.Dash...)
	}
	if props.Alpha != nil {
		c.cur.alpha = math.Max(0, math.Min(1, *props.Alpha))
	}
	if props.Font != "" {
		c.SetFont(props.Font)
	}
}

// SetFont selects the font family and size. Malformed fonts are ignored.
func (c *Context) SetFont(spec string) {
	name, size, err := textlayout.ParseFontString(spec)
	if err != nil {
		return
	}
	c.cur.font = spec
	c.cur.family = name
	c.cur.size = size
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path = ports.Path{}
}

// Rect adds a closed rectangle to the current path.
func (c *Context) Rect(x, y, width, height float64) {
	c.path.MoveTo(x, y).LineTo(x+width, y).LineTo(x+width, y+height).LineTo(x, y+height).Close()
}

// Fill fills the current path.
func (c *Context) Fill() { c.FillPath(c.path) }

// Stroke outlines the current path.
func (c *Context) Stroke() { c.StrokePath(c.path) }

// FillPath fills p.
func (c *Context) FillPath(p ports.Path) {
	if p.Empty() {
		return
	}
	c.useFill()
	c.emit(p)
	c.pdf().DrawPath("F")
}

// StrokePath outlines p.
func (c *Context) StrokePath(p ports.Path) {
	if p.Empty() {
		return
	}
	c.useStroke()
	c.emit(p)
	c.pdf().DrawPath("D")
}

func (c *Context) emit(p ports.Path) {
	pdf := c.pdf()
	m := c.cur.matrix
	for _, seg := range p.Segments {
		pts := seg.Points
		switch seg.Kind {
		case ports.SegMoveTo:
			pdf.MoveTo(m.apply(pts[0].X, pts[0].Y))
		case ports.SegLineTo:
			pdf.LineTo(m.apply(pts[0].X, pts[0].Y))
		case ports.SegQuadTo:
			cx, cy := m.apply(pts[0].X, pts[0].Y)
			x, y := m.apply(pts[1].X, pts[1].Y)
			pdf.CurveTo(cx, cy, x, y)
		case ports.SegCubicTo:
			c1x, c1y := m.apply(pts[0].X, pts[0].Y)
			c2x, c2y := m.apply(pts[1].X, pts[1].Y)
			x, y := m.apply(pts[2].X, pts[2].Y)
			pdf.CurveBezierCubicTo(c1x, c1y, c2x, c2y, x, y)
		case ports.SegClose:
			pdf.ClosePath()
		}
	}
}

func (c *Context) useFill() {
	r, g, b, a := rgba(c.cur.fill)
	pdf := c.pdf()
	pdf.SetFillColor(r, g, b)
	pdf.SetAlpha(a*c.cur.alpha, "Normal")
}

func (c *Context) useStroke() {
	r, g, b, a := rgba(c.cur.stroke)
	pdf := c.pdf()
	s := c.cur.matrix.scale()

	pdf.SetDrawColor(r, g, b)
	pdf.SetAlpha(a*c.cur.alpha, "Normal")
	pdf.SetLineWidth(c.cur.lineWidth * s)

	switch c.cur.lineCap {
	case ports.LineCapRound:
		pdf.SetLineCapStyle("round")
	case ports.LineCapSquare:
		pdf.SetLineCapStyle("square")
	default:
		pdf.SetLineCapStyle("butt")
	}
	switch c.cur.lineJoin {
	case ports.LineJoinRound:
		pdf.SetLineJoinStyle("round")
	case ports.LineJoinBevel:
		pdf.SetLineJoinStyle("bevel")
	default:
		pdf.SetLineJoinStyle("miter")
	}

	dash := make([]float64, len(c.cur.dash))
	for i, d := range c.cur.dash {
		dash[i] = d * s
	}
	pdf.SetDashPattern(dash, 0)
}

// useFont selects the current font at size points on the document.
func (c *Context) useFont(size float64) {
	c.pdf().SetFont(c.target.family(c.cur.family), "", size)
}

// FillText draws text with the fill color.
func (c *Context) FillText(text string, x, y float64) {
	r, g, b, a := rgba(c.cur.fill)
	c.drawText(text, x, y, r, g, b, a, 0)
}

// StrokeText outlines text with the stroke color.
func (c *Context) StrokeText(text string, x, y float64) {
	r, g, b, a := rgba(c.cur.stroke)
	c.useStroke()
	c.drawText(text, x, y, r, g, b, a, 1)
}

func (c *Context) drawText(text string, x, y float64, r, g, b int, a float64, mode int) {
	pdf := c.pdf()
	m := c.cur.matrix

	c.useFont(c.cur.size * m.scale())
	pdf.SetTextColor(r, g, b)
	pdf.SetAlpha(a*c.cur.alpha, "Normal")
	pdf.SetTextRenderingMode(mode)
	px, py := m.apply(x, y)
	pdf.Text(px, py, text)
	pdf.SetTextRenderingMode(0)
}

// MeasureText measures text in the current font, in local units.
func (c *Context) MeasureText(text string) ports.HostTextMetrics {
	pdf := c.pdf()
	size := c.cur.size
	c.useFont(size)

	ascent, descent := coreAscent*size, coreDescent*size
	if desc := pdf.GetFontDesc("", ""); desc.Ascent != 0 {
		ascent = float64(desc.Ascent) / 1000 * size
		descent = math.Abs(float64(desc.Descent)) / 1000 * size
	}

	metrics := ports.HostTextMetrics{
		Width:                  pdf.GetStringWidth(text),
		FontBoundingBoxAscent:  ascent,
		FontBoundingBoxDescent: descent,
	}
	if strings.TrimSpace(text) != "" {
		metrics.ActualBoundingBoxAscent = ascent
		metrics.ActualBoundingBoxDescent = descent
	}
	return metrics
}

// DrawImage draws src at (dx, dy) at its natural size.
func (c *Context) DrawImage(src image.Image, dx, dy float64) {
	b := src.Bounds()
	c.DrawImageScaled(src, dx, dy, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws src scaled into the destination rectangle. Only
// the translation and scale of the transform are honored.
func (c *Context) DrawImageScaled(src image.Image, dx, dy, dw, dh float64) {
	if src.Bounds().Empty() || dw == 0 || dh == 0 {
		return
	}

	name, err := c.target.registerImage(src)
	if err != nil {
		return
	}

	m := c.cur.matrix
	x0, y0 := m.apply(dx, dy)
	x1, y1 := m.apply(dx+dw, dy+dh)

	pdf := c.pdf()
	pdf.SetAlpha(c.cur.alpha, "Normal")
	pdf.ImageOptions(name,
		math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0),
		false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// DrawImageRegion draws a region of src scaled into the destination
// rectangle.
func (c *Context) DrawImageRegion(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	b := src.Bounds()
	r := image.Rect(
		int(math.Floor(sx)), int(math.Floor(sy)),
		int(math.Ceil(sx+sw)), int(math.Ceil(sy+sh)),
	).Add(b.Min).Intersect(b)
	if r.Empty() {
		return
	}

	crop := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(crop, crop.Bounds(), src, r.Min, draw.Src)
	c.DrawImageScaled(crop, dx, dy, dw, dh)
}

// ClearRect resets the page when the rectangle covers all of it and
// paints white otherwise, since PDF content cannot be erased.
func (c *Context) ClearRect(x, y, width, height float64) {
	m := c.cur.matrix
	x0, y0 := m.apply(x, y)
	x1, y1 := m.apply(x+width, y+height)
	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)

	t := c.target
	if minX <= 0 && minY <= 0 && maxX >= float64(t.width) && maxY >= float64(t.height) {
		t.reset()
		return
	}

	pdf := c.pdf()
	pdf.SetFillColor(255, 255, 255)
	pdf.SetAlpha(1, "Normal")
	pdf.Rect(minX, minY, maxX-minX, maxY-minY, "F")
}

// family returns the document font family for a CSS font name, adding
// UTF-8 fonts on first use.
func (t *Target) family(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if fam, ok := t.families[key]; ok {
		return fam
	}

	fam := coreFamily(key)
	if t.fonts != nil {
		if data, ok := t.fonts.Data(key); ok {
			fam = "u" + strings.NewReplacer(" ", "", "-", "").Replace(key)
			t.pdf.AddUTF8FontFromBytes(fam, "", data)
		}
	}
	t.families[key] = fam
	return fam
}

func coreFamily(key string) string {
	switch {
	case strings.Contains(key, "mono"), strings.Contains(key, "courier"):
		return "Courier"
	case key == "serif", strings.Contains(key, "times"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// registerImage encodes img as PNG and registers it with the document.
func (t *Target) registerImage(img image.Image) (string, error) {
	data, err := ggcanvas.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	t.images++
	name := fmt.Sprintf("img%d", t.images)
	info := t.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	if info == nil {
		return "", fmt.Errorf("register image: %w", t.pdf.Error())
	}
	return name, nil
}

type solid struct {
	c color.Color
}

func (s solid) ColorAt(x, y int) color.Color { return s.c }

// rgba samples a paint at its origin as 8-bit color plus alpha in [0,1].
func rgba(p ports.Paint) (r, g, b int, a float64) {
	n := color.NRGBAModel.Convert(p.ColorAt(0, 0)).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

var _ ports.Context2D = (*Context)(nil)
