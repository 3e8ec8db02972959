package drawing

import (
	"image"
	"image/color"

	"github.com/user/mosaic/pkg/ports"
)

// Style modifies the properties of a single draw call.
type Style interface {
	Apply(props *ports.Props, s *Surface)
}

// StyleFunc adapts a function to Style.
type StyleFunc func(props *ports.Props, s *Surface)

// Apply implements Style.
func (f StyleFunc) Apply(props *ports.Props, s *Surface) {
	f(props, s)
}

// ApplyStyles folds styles over props in order. Later styles overwrite
// fields set by earlier ones. Nil entries are skipped.
func ApplyStyles(props *ports.Props, styles []Style, s *Surface) {
	for _, style := range styles {
		if style == nil {
			continue
		}
		style.Apply(props, s)
	}
}

// Styles groups several styles into one.
func Styles(styles ...Style) Style {
	return StyleFunc(func(props *ports.Props, s *Surface) {
		ApplyStyles(props, styles, s)
	})
}

// Solid is a single-color paint.
type Solid struct {
	Color color.Color
}

// ColorAt implements ports.Paint.
func (p Solid) ColorAt(x, y int) color.Color { return p.Color }

// ImagePattern repeats an image across the plane.
type ImagePattern struct {
	Image image.Image
}

// ColorAt implements ports.Paint.
func (p ImagePattern) ColorAt(x, y int) color.Color {
	b := p.Image.Bounds()
	if b.Empty() {
		return color.Transparent
	}
	x = b.Min.X + mod(x-b.Min.X, b.Dx())
	y = b.Min.Y + mod(y-b.Min.Y, b.Dy())
	return p.Image.At(x, y)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Fill enables filling with paint.
func Fill(paint ports.Paint) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.FillStyle = paint
	})
}

// FillColor enables filling with a solid color. A fully transparent color
// still enables filling.
func FillColor(c color.Color) Style {
	return Fill(Solid{Color: c})
}

// Stroke enables stroking with paint at the given line width.
func Stroke(paint ports.Paint, width float64) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.StrokeStyle = paint
		props.LineWidth = width
	})
}

// StrokeColor enables stroking with a solid color, keeping the line width.
func StrokeColor(c color.Color) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.StrokeStyle = Solid{Color: c}
	})
}

// Pattern enables filling with a repeated image.
func Pattern(img image.Image) Style {
	return Fill(ImagePattern{Image: img})
}

// LineWidth sets the stroke width.
func LineWidth(width float64) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.LineWidth = width
	})
}

// LineCap sets how open stroke ends are drawn.
func LineCap(c ports.LineCap) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.LineCap = c
	})
}

// LineJoin sets how stroke corners are drawn.
func LineJoin(j ports.LineJoin) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.LineJoin = j
	})
}

// Dash sets the stroke dash pattern. An empty pattern draws solid lines.
func Dash(pattern ...float64) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.Dash = append([]float64{}, pattern...)
	})
}

// Alpha sets the global alpha.
func Alpha(a float64) Style {
	return StyleFunc(func(props *ports.Props, _ *Surface) {
		props.Alpha = &a
	})
}
