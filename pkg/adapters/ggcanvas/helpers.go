package ggcanvas

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/math/fixed"

	"github.com/user/mosaic/pkg/ports"
)

// setMatrix makes dc's transform equal to m. gg only composes transforms,
// so m is rebuilt from identity as translate, rotate, shear, scale.
func setMatrix(dc *gg.Context, m gg.Matrix) {
	dc.Identity()
	dc.Translate(m.X0, m.Y0)

	sx := math.Hypot(m.XX, m.YX)
	if sx == 0 {
		dc.Scale(0, 0)
		return
	}

	theta := math.Atan2(m.YX, m.XX)
	sy := (m.XX*m.YY - m.YX*m.XY) / sx
	shear := 0.0
	if sy != 0 {
		shear = (math.Cos(theta)*m.XY + math.Sin(theta)*m.YY) / sy
	}

	if theta != 0 {
		dc.Rotate(theta)
	}
	if shear != 0 {
		dc.Shear(shear, 0)
	}
	dc.Scale(sx, sy)
}

func tracePath(dc *gg.Context, p ports.Path) {
	for _, seg := range p.Segments {
		pts := seg.Points
		switch seg.Kind {
		case ports.SegMoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case ports.SegLineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case ports.SegQuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case ports.SegCubicTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case ports.SegClose:
			dc.ClosePath()
		}
	}
}

// solid is a single-color paint.
type solid struct {
	c color.Color
}

func (s solid) ColorAt(x, y int) color.Color { return s.c }

// alphaPaint scales every color of a paint by a global alpha.
type alphaPaint struct {
	paint ports.Paint
	alpha float64
}

func (a alphaPaint) ColorAt(x, y int) color.Color {
	return scaleAlpha(a.paint.ColorAt(x, y), a.alpha)
}

func withAlpha(p ports.Paint, alpha float64) ports.Paint {
	if alpha >= 1 {
		return p
	}
	return alphaPaint{paint: p, alpha: alpha}
}

// scaleAlpha multiplies a premultiplied color by alpha.
func scaleAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
