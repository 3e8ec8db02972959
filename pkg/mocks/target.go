package mocks

import (
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/user/mosaic/pkg/ports"
)

// Call is one recorded target or context call.
type Call struct {
	Name string
	Args []interface{}
}

// String formats the call as Name(arg, arg).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Target is a recording implementation of ports.Target. Target and
// context calls share one log so their relative order can be checked.
type Target struct {
	width     int
	height    int
	pixelated bool
	calls     []Call
	ctx       *Context2D
}

// NewTarget creates a recording target of the given size.
func NewTarget(width, height int) *Target {
	t := &Target{width: width, height: height}
	t.ctx = &Context2D{target: t, transform: [6]float64{1, 0, 0, 1, 0, 0}}
	return t
}

func (t *Target) record(name string, args ...interface{}) {
	t.calls = append(t.calls, Call{Name: name, Args: args})
}

func (t *Target) Width() int  { return t.width }
func (t *Target) Height() int { return t.height }

func (t *Target) SetWidth(width int) {
	t.record("SetWidth", width)
	t.width = width
}

func (t *Target) SetHeight(height int) {
	t.record("SetHeight", height)
	t.height = height
}

func (t *Target) Context2D() ports.Context2D { return t.ctx }

// Context returns the concrete recording context.
func (t *Target) Context() *Context2D { return t.ctx }

func (t *Target) SetPixelated(pixelated bool) {
	t.record("SetPixelated", pixelated)
	t.pixelated = pixelated
}

// Pixelated reports the last presentation hint.
func (t *Target) Pixelated() bool { return t.pixelated }

// Image returns a blank image of the target's size.
func (t *Target) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, t.width, t.height))
}

// Calls returns every recorded call in order.
func (t *Target) Calls() []Call {
	return append([]Call(nil), t.calls...)
}

// Names returns the names of every recorded call in order.
func (t *Target) Names() []string {
	names := make([]string, len(t.calls))
	for i, c := range t.calls {
		names[i] = c.Name
	}
	return names
}

// CallsNamed returns the recorded calls with the given name.
func (t *Target) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range t.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards recorded calls.
func (t *Target) Reset() {
	t.calls = nil
	t.ctx.Applied = nil
}

// Context2D is a recording implementation of ports.Context2D.
type Context2D struct {
	target    *Target
	transform [6]float64
	smoothing bool
	depth     int

	// Applied holds every Props passed to Apply.
	Applied []ports.Props

	// MeasureTextFunc overrides the default metrics: 7 units per rune,
	// ascent 11 and descent 2 for every string including the empty one.
	MeasureTextFunc func(text string) ports.HostTextMetrics
}

func (c *Context2D) record(name string, args ...interface{}) {
	c.target.record(name, args...)
}

func (c *Context2D) Save() {
	c.depth++
	c.record("Save")
}

func (c *Context2D) Restore() {
	c.depth--
	c.record("Restore")
}

// Depth returns Save calls minus Restore calls.
func (c *Context2D) Depth() int { return c.depth }

func (c *Context2D) SetImageSmoothing(enabled bool) {
	c.smoothing = enabled
	c.record("SetImageSmoothing", enabled)
}

// ImageSmoothing returns the last smoothing setting.
func (c *Context2D) ImageSmoothing() bool { return c.smoothing }

func (c *Context2D) SetTransform(a, b, cc, d, e, f float64) {
	c.transform = [6]float64{a, b, cc, d, e, f}
	c.record("SetTransform", a, b, cc, d, e, f)
}

// Transform returns the last transform set.
func (c *Context2D) Transform() [6]float64 { return c.transform }

func (c *Context2D) Translate(x, y float64) {
	c.record("Translate", x, y)
}

func (c *Context2D) Apply(props ports.Props) {
	c.Applied = append(c.Applied, props)
	c.record("Apply")
}

// LastApplied returns the most recent Props passed to Apply.
func (c *Context2D) LastApplied() ports.Props {
	if len(c.Applied) == 0 {
		return ports.Props{}
	}
	return c.Applied[len(c.Applied)-1]
}

func (c *Context2D) SetFont(font string) {
	c.record("SetFont", font)
}

func (c *Context2D) BeginPath() { c.record("BeginPath") }

func (c *Context2D) Rect(x, y, width, height float64) {
	c.record("Rect", x, y, width, height)
}

func (c *Context2D) Fill()   { c.record("Fill") }
func (c *Context2D) Stroke() { c.record("Stroke") }

func (c *Context2D) FillPath(p ports.Path) {
	c.record("FillPath", len(p.Segments))
}

func (c *Context2D) StrokePath(p ports.Path) {
	c.record("StrokePath", len(p.Segments))
}

func (c *Context2D) FillText(text string, x, y float64) {
	c.record("FillText", text, x, y)
}

func (c *Context2D) StrokeText(text string, x, y float64) {
	c.record("StrokeText", text, x, y)
}

func (c *Context2D) MeasureText(text string) ports.HostTextMetrics {
	c.record("MeasureText", text)
	if c.MeasureTextFunc != nil {
		return c.MeasureTextFunc(text)
	}
	return ports.HostTextMetrics{
		Width:                    float64(7 * utf8.RuneCountInString(text)),
		ActualBoundingBoxAscent:  11,
		ActualBoundingBoxDescent: 2,
		FontBoundingBoxAscent:    11,
		FontBoundingBoxDescent:   2,
	}
}

func (c *Context2D) DrawImage(src image.Image, dx, dy float64) {
	c.record("DrawImage", dx, dy)
}

func (c *Context2D) DrawImageScaled(src image.Image, dx, dy, dw, dh float64) {
	c.record("DrawImageScaled", dx, dy, dw, dh)
}

func (c *Context2D) DrawImageRegion(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	c.record("DrawImageRegion", sx, sy, sw, sh, dx, dy, dw, dh)
}

func (c *Context2D) ClearRect(x, y, width, height float64) {
	c.record("ClearRect", x, y, width, height)
}

var (
	_ ports.Target      = (*Target)(nil)
	_ ports.PixelHinter = (*Target)(nil)
	_ ports.ImageTarget = (*Target)(nil)
	_ ports.Context2D   = (*Context2D)(nil)
)
