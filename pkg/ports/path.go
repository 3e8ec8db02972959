package ports

// SegmentKind identifies a path segment.
type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegQuadTo
	SegCubicTo
	SegClose
)

// Segment is one path command. Points holds 1 (move/line), 2 (quad) or
// 3 (cubic) points; it is empty for close.
type Segment struct {
	Kind   SegmentKind
	Points []Point
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Path is an ordered list of segments in local coordinates.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: SegMoveTo, Points: []Point{{x, y}}})
	return p
}

// LineTo adds a straight line.
func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: SegLineTo, Points: []Point{{x, y}}})
	return p
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: SegQuadTo, Points: []Point{{cx, cy}, {x, y}}})
	return p
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: SegCubicTo, Points: []Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Kind: SegClose})
	return p
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }
