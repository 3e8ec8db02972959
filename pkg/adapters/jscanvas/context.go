//go:build js && wasm

package jscanvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"syscall/js"

	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/ports"
)

// Context forwards drawing calls to a CanvasRenderingContext2D.
type Context struct {
	ctx js.Value
	doc js.Value
}

// Save pushes the canvas state.
func (c *Context) Save() { c.ctx.Call("save") }

// Restore pops the canvas state.
func (c *Context) Restore() { c.ctx.Call("restore") }

// SetImageSmoothing toggles imageSmoothingEnabled.
func (c *Context) SetImageSmoothing(enabled bool) { c.ctx.Set("imageSmoothingEnabled", enabled) }

// SetTransform replaces the transform.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	c.ctx.Call("setTransform", a, b, cc, d, e, f)
}

// Translate moves the origin.
func (c *Context) Translate(x, y float64) { c.ctx.Call("translate", x, y) }

// Apply copies the set properties onto the canvas context.
func (c *Context) Apply(props ports.Props) {
	if props.FillStyle != nil {
		c.ctx.Set("fillStyle", c.paint(props.FillStyle))
	}
	if props.StrokeStyle != nil {
		c.ctx.Set("strokeStyle", c.paint(props.StrokeStyle))
	}
	if props.LineWidth > 0 {
		c.ctx.Set("lineWidth", props.LineWidth)
	}
	switch props.LineCap {
	case ports.LineCapButt:
		c.ctx.Set("lineCap", "butt")
	case ports.LineCapRound:
		c.ctx.Set("lineCap", "round")
	case ports.LineCapSquare:
		c.ctx.Set("lineCap", "square")
	}
	switch props.LineJoin {
	case ports.LineJoinMiter:
		c.ctx.Set("lineJoin", "miter")
	case ports.LineJoinRound:
		c.ctx.Set("lineJoin", "round")
	case ports.LineJoinBevel:
		c.ctx.Set("lineJoin", "bevel")
	}
	if props.Dash != nil {
		dash := make([]interface{}, len(props.Dash))
		for i, d := range props.Dash {
			dash[i] = d
		}
		c.ctx.Call("setLineDash", dash)
	}
	if props.Alpha != nil {
		c.ctx.Set("globalAlpha", *props.Alpha)
	}
	if props.Font != "" {
		c.SetFont(props.Font)
	}
}

// paint converts p to a CSS color string or a CanvasPattern.
func (c *Context) paint(p ports.Paint) interface{} {
	if pattern, ok := p.(drawing.ImagePattern); ok {
		return c.ctx.Call("createPattern", c.canvasOf(pattern.Image), "repeat")
	}
	return cssColor(p.ColorAt(0, 0))
}

// SetFont sets the CSS font shorthand.
func (c *Context) SetFont(font string) { c.ctx.Set("font", font) }

// BeginPath discards the current path.
func (c *Context) BeginPath() { c.ctx.Call("beginPath") }

// Rect adds a rectangle to the current path.
func (c *Context) Rect(x, y, width, height float64) { c.ctx.Call("rect", x, y, width, height) }

// Fill fills the current path.
func (c *Context) Fill() { c.ctx.Call("fill") }

// Stroke strokes the current path.
func (c *Context) Stroke() { c.ctx.Call("stroke") }

// FillPath fills p without touching the current path.
func (c *Context) FillPath(p ports.Path) { c.ctx.Call("fill", path2D(p)) }

// StrokePath strokes p without touching the current path.
func (c *Context) StrokePath(p ports.Path) { c.ctx.Call("stroke", path2D(p)) }

func path2D(p ports.Path) js.Value {
	path := js.Global().Get("Path2D").New()
	for _, seg := range p.Segments {
		pts := seg.Points
		switch seg.Kind {
		case ports.SegMoveTo:
			path.Call("moveTo", pts[0].X, pts[0].Y)
		case ports.SegLineTo:
			path.Call("lineTo", pts[0].X, pts[0].Y)
		case ports.SegQuadTo:
			path.Call("quadraticCurveTo", pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case ports.SegCubicTo:
			path.Call("bezierCurveTo", pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case ports.SegClose:
			path.Call("closePath")
		}
	}
	return path
}

// FillText fills text at the baseline origin.
func (c *Context) FillText(text string, x, y float64) { c.ctx.Call("fillText", text, x, y) }

// StrokeText strokes text at the baseline origin.
func (c *Context) StrokeText(text string, x, y float64) { c.ctx.Call("strokeText", text, x, y) }

// MeasureText returns the browser's TextMetrics.
func (c *Context) MeasureText(text string) ports.HostTextMetrics {
	m := c.ctx.Call("measureText", text)
	return ports.HostTextMetrics{
		Width:                    m.Get("width").Float(),
		ActualBoundingBoxAscent:  number(m, "actualBoundingBoxAscent"),
		ActualBoundingBoxDescent: number(m, "actualBoundingBoxDescent"),
		FontBoundingBoxAscent:    number(m, "fontBoundingBoxAscent"),
		FontBoundingBoxDescent:   number(m, "fontBoundingBoxDescent"),
	}
}

// number reads a numeric property that older browsers may not report.
func number(v js.Value, name string) float64 {
	f := v.Get(name)
	if f.Type() != js.TypeNumber {
		return 0
	}
	return f.Float()
}

// DrawImage draws src at (dx, dy).
func (c *Context) DrawImage(src image.Image, dx, dy float64) {
	c.ctx.Call("drawImage", c.canvasOf(src), dx, dy)
}

// DrawImageScaled draws src into the destination rectangle.
func (c *Context) DrawImageScaled(src image.Image, dx, dy, dw, dh float64) {
	c.ctx.Call("drawImage", c.canvasOf(src), dx, dy, dw, dh)
}

// DrawImageRegion draws a source rectangle of src into the destination
// rectangle.
func (c *Context) DrawImageRegion(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	c.ctx.Call("drawImage", c.canvasOf(src), sx, sy, sw, sh, dx, dy, dw, dh)
}

// ClearRect clears the rectangle.
func (c *Context) ClearRect(x, y, width, height float64) {
	c.ctx.Call("clearRect", x, y, width, height)
}

// canvasOf copies img into a detached canvas that drawImage and
// createPattern accept.
func (c *Context) canvasOf(img image.Image) js.Value {
	b := img.Bounds()
	canvas := c.doc.Call("createElement", "canvas")
	canvas.Set("width", b.Dx())
	canvas.Set("height", b.Dy())
	if b.Empty() {
		return canvas
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	ctx := canvas.Call("getContext", "2d")
	data := ctx.Call("createImageData", b.Dx(), b.Dy())
	js.CopyBytesToJS(data.Get("data"), nrgba.Pix)
	ctx.Call("putImageData", data, 0, 0)
	return canvas
}

// cssColor formats c as rgba().
func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

var _ ports.Context2D = (*Context)(nil)
