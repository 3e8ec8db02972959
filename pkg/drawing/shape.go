package drawing

import (
	"math"

	"github.com/user/mosaic/pkg/ports"
)

// Shape produces a path for a bounding box with its origin at (0, 0).
type Shape interface {
	Path(width, height float64) ports.Path
}

// PathFunc adapts a function to Shape.
type PathFunc func(width, height float64) ports.Path

// Path implements Shape.
func (f PathFunc) Path(width, height float64) ports.Path {
	return f(width, height)
}

// Rectangle fills its whole bounding box.
type Rectangle struct{}

// Path implements Shape.
func (Rectangle) Path(width, height float64) ports.Path {
	var p ports.Path
	p.MoveTo(0, 0).LineTo(width, 0).LineTo(width, height).LineTo(0, height).Close()
	return p
}

// RoundedRectangle is a rectangle with circular corners. The radius is
// clamped to half the shorter side.
type RoundedRectangle struct {
	Radius float64
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Path implements Shape.
func (r RoundedRectangle) Path(width, height float64) ports.Path {
	rad := math.Max(0, math.Min(r.Radius, math.Min(width, height)/2))
	if rad == 0 {
		return Rectangle{}.Path(width, height)
	}
	k := rad * kappa

	var p ports.Path
	p.MoveTo(rad, 0).
		LineTo(width-rad, 0).
		CubicTo(width-rad+k, 0, width, rad-k, width, rad).
		LineTo(width, height-rad).
		CubicTo(width, height-rad+k, width-rad+k, height, width-rad, height).
		LineTo(rad, height).
		CubicTo(rad-k, height, 0, height-rad+k, 0, height-rad).
		LineTo(0, rad).
		CubicTo(0, rad-k, rad-k, 0, rad, 0).
		Close()
	return p
}

// Ellipse is inscribed in its bounding box.
type Ellipse struct{}

// Path implements Shape.
func (Ellipse) Path(width, height float64) ports.Path {
	rx, ry := width/2, height/2
	kx, ky := rx*kappa, ry*kappa

	var p ports.Path
	p.MoveTo(width, ry).
		CubicTo(width, ry+ky, rx+kx, height, rx, height).
		CubicTo(rx-kx, height, 0, ry+ky, 0, ry).
		CubicTo(0, ry-ky, rx-kx, 0, rx, 0).
		CubicTo(rx+kx, 0, width, ry-ky, width, ry).
		Close()
	return p
}

// Polygon is a closed polygon whose points are in unit coordinates,
// scaled to the bounding box.
type Polygon struct {
	Points []ports.Point
}

// Path implements Shape.
func (g Polygon) Path(width, height float64) ports.Path {
	var p ports.Path
	for i, pt := range g.Points {
		if i == 0 {
			p.MoveTo(pt.X*width, pt.Y*height)
		} else {
			p.LineTo(pt.X*width, pt.Y*height)
		}
	}
	if len(g.Points) > 0 {
		p.Close()
	}
	return p
}
