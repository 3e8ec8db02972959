package ggcanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"

	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/textlayout"
)

const defaultFont = "10px sans-serif"

// state is the part of the context that Save and Restore preserve.
type state struct {
	matrix    gg.Matrix
	fill      ports.Paint
	stroke    ports.Paint
	lineWidth float64
	lineCap   ports.LineCap
	lineJoin  ports.LineJoin
	dash      []float64
	alpha     float64
	font      string
	face      font.Face
	smoothing bool
}

func defaultState() state {
	return state{
		matrix:    gg.Identity(),
		fill:      solid{color.Black},
		stroke:    solid{color.Black},
		lineWidth: 1,
		lineCap:   ports.LineCapButt,
		lineJoin:  ports.LineJoinMiter,
		alpha:     1,
		font:      defaultFont,
		face:      basicfont.Face7x13,
		smoothing: true,
	}
}

// Context implements ports.Context2D on top of a gg.Context.
//
// gg has no settable matrix and ties text color to its fill color, so the
// context keeps its own state and pushes it to gg before each operation
// that depends on it.
type Context struct {
	target *Target
	cur    state
	stack  []state
}

func newContext(t *Target) *Context {
	c := &Context{target: t, cur: defaultState()}
	c.sync()
	return c
}

func (c *Context) dc() *gg.Context { return c.target.dc }

// sync pushes the current state to the gg context.
func (c *Context) sync() {
	dc := c.dc()
	setMatrix(dc, c.cur.matrix)
	dc.SetFillStyle(withAlpha(c.cur.fill, c.cur.alpha))
	dc.SetStrokeStyle(withAlpha(c.cur.stroke, c.cur.alpha))
	dc.SetLineWidth(c.cur.lineWidth)
	dc.SetDash(c.cur.dash...)
	dc.SetFontFace(c.cur.face)

	switch c.cur.lineCap {
	case ports.LineCapRound:
		dc.SetLineCap(gg.LineCapRound)
	case ports.LineCapSquare:
		dc.SetLineCap(gg.LineCapSquare)
	default:
		dc.SetLineCap(gg.LineCapButt)
	}

	// gg has no miter join; bevel is the closest.
	if c.cur.lineJoin == ports.LineJoinRound {
		dc.SetLineJoin(gg.LineJoinRound)
	} else {
		dc.SetLineJoin(gg.LineJoinBevel)
	}
}

// Save pushes the current drawing state.
func (c *Context) Save() {
	saved := c.cur
	saved.dash = append([]float64(nil), c.cur.dash...)
	c.stack = append(c.stack, saved)
}

// Restore pops the most recently saved drawing state. It is a no-op when
// nothing was saved.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.sync()
}

// SetImageSmoothing toggles bilinear filtering for scaled images.
func (c *Context) SetImageSmoothing(enabled bool) {
	c.cur.smoothing = enabled
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	c.cur.matrix = gg.Matrix{XX: a, YX: b, XY: cc, YY: d, X0: e, Y0: f}
	setMatrix(c.dc(), c.cur.matrix)
}

// Translate moves the origin.
func (c *Context) Translate(x, y float64) {
	c.cur.matrix = c.cur.matrix.Translate(x, y)
	c.dc().Translate(x, y)
}

// Transform returns the current transform.
func (c *Context) Transform() gg.Matrix { return c.cur.matrix }

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
		c.cur.alpha = clamp01(*props.Alpha)
	}
	if props.Font != "" {
		c.SetFont(props.Font)
	}
	c.sync()
}

// SetFont selects a face through the target's resolver. Fonts that cannot
// be parsed or resolved leave the current face in place.
func (c *Context) SetFont(spec string) {
	name, size, err := textlayout.ParseFontString(spec)
	if err != nil {
		return
	}

	face := font.Face(basicfont.Face7x13)
	if c.target.fonts != nil {
		resolved, err := c.target.fonts.Resolve(name, size)
		if err != nil {
			return
		}
		face = resolved
	}

	c.cur.font = spec
	c.cur.face = face
	c.dc().SetFontFace(face)
}

// Font returns the current font string.
func (c *Context) Font() string { return c.cur.font }

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.dc().ClearPath()
}

// Rect adds a closed rectangle to the current path.
func (c *Context) Rect(x, y, width, height float64) {
	c.dc().DrawRectangle(x, y, width, height)
}

// Fill fills the current path. The path is kept for a following Stroke.
func (c *Context) Fill() {
	c.dc().FillPreserve()
}

// Stroke outlines the current path. The path is kept.
func (c *Context) Stroke() {
	c.dc().StrokePreserve()
}

// FillPath fills p.
func (c *Context) FillPath(p ports.Path) {
	dc := c.dc()
	dc.ClearPath()
	tracePath(dc, p)
	dc.Fill()
}

// StrokePath outlines p.
func (c *Context) StrokePath(p ports.Path) {
	dc := c.dc()
	dc.ClearPath()
	tracePath(dc, p)
	dc.Stroke()
}

// FillText draws text with the fill color.
func (c *Context) FillText(text string, x, y float64) {
	c.drawText(text, x, y, c.cur.fill)
}

// StrokeText draws text with the stroke color. Glyphs are rendered solid;
// gg has no glyph outlines.
func (c *Context) StrokeText(text string, x, y float64) {
	c.drawText(text, x, y, c.cur.stroke)
}

func (c *Context) drawText(text string, x, y float64, paint ports.Paint) {
	dc := c.dc()
	dc.SetColor(withAlpha(paint, c.cur.alpha).ColorAt(0, 0))
	dc.DrawString(text, x, y)
	// SetColor replaced both patterns.
	dc.SetFillStyle(withAlpha(c.cur.fill, c.cur.alpha))
	dc.SetStrokeStyle(withAlpha(c.cur.stroke, c.cur.alpha))
}

// MeasureText measures text in the current face.
func (c *Context) MeasureText(text string) ports.HostTextMetrics {
	face := c.cur.face
	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()

	return ports.HostTextMetrics{
		Width:                    fixedToFloat(advance),
		ActualBoundingBoxAscent:  -fixedToFloat(bounds.Min.Y),
		ActualBoundingBoxDescent: fixedToFloat(bounds.Max.Y),
		FontBoundingBoxAscent:    fixedToFloat(metrics.Ascent),
		FontBoundingBoxDescent:   fixedToFloat(metrics.Descent),
	}
}

// DrawImage draws src at (dx, dy) at its natural size.
func (c *Context) DrawImage(src image.Image, dx, dy float64) {
	b := src.Bounds()
	c.drawImage(src, b, dx, dy, 1, 1)
}

// DrawImageScaled draws src scaled into the destination rectangle.
func (c *Context) DrawImageScaled(src image.Image, dx, dy, dw, dh float64) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	c.drawImage(src, b, dx, dy, dw/float64(b.Dx()), dh/float64(b.Dy()))
}

// DrawImageRegion draws a region of src scaled into the destination
// rectangle. Source coordinates are relative to the image bounds.
func (c *Context) DrawImageRegion(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if sw == 0 || sh == 0 {
		return
	}
	b := src.Bounds()
	sr := image.Rect(
		int(math.Floor(sx)), int(math.Floor(sy)),
		int(math.Ceil(sx+sw)), int(math.Ceil(sy+sh)),
	).Add(b.Min).Intersect(b)
	if sr.Empty() {
		return
	}

	kx, ky := dw/sw, dh/sh
	// Map the clipped region's origin back to its destination offset.
	ox := dx + (float64(sr.Min.X-b.Min.X)-sx)*kx
	oy := dy + (float64(sr.Min.Y-b.Min.Y)-sy)*ky
	c.drawImage(src, sr, ox, oy, kx, ky)
}

// drawImage maps sr of src so that sr.Min lands on local (dx, dy) with the
// given scale, then through the current transform.
func (c *Context) drawImage(src image.Image, sr image.Rectangle, dx, dy, kx, ky float64) {
	dst, ok := c.dc().Image().(*image.RGBA)
	if !ok || sr.Empty() {
		return
	}

	m := c.cur.matrix
	tx := dx - float64(sr.Min.X)*kx
	ty := dy - float64(sr.Min.Y)*ky
	s2d := f64.Aff3{
		m.XX * kx, m.XY * ky, m.XX*tx + m.XY*ty + m.X0,
		m.YX * kx, m.YY * ky, m.YX*tx + m.YY*ty + m.Y0,
	}

	var opts *draw.Options
	if c.cur.alpha < 1 {
		opts = &draw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(c.cur.alpha * 0xffff)}),
		}
	}

	var interp draw.Transformer = draw.NearestNeighbor
	if c.cur.smoothing {
		interp = draw.BiLinear
	}
	interp.Transform(dst, s2d, src, sr, draw.Over, opts)
}

// ClearRect makes the device-space bounding box of the rectangle
// transparent.
func (c *Context) ClearRect(x, y, width, height float64) {
	dst, ok := c.dc().Image().(*image.RGBA)
	if !ok {
		return
	}

	m := c.cur.matrix
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [][2]float64{{x, y}, {x + width, y}, {x, y + height}, {x + width, y + height}} {
		px, py := m.TransformPoint(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(dst.Bounds())
	draw.Draw(dst, r, image.Transparent, image.Point{}, draw.Src)
}

var _ ports.Context2D = (*Context)(nil)
