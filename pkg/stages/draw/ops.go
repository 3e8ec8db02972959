package draw

import (
	"fmt"

	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
)

var (
	lineCaps = map[string]ports.LineCap{
		"butt":   ports.LineCapButt,
		"round":  ports.LineCapRound,
		"square": ports.LineCapSquare,
	}
	lineJoins = map[string]ports.LineJoin{
		"miter": ports.LineJoinMiter,
		"round": ports.LineJoinRound,
		"bevel": ports.LineJoinBevel,
	}
)

// styles converts a script style into modifiers in a fixed order: fill,
// pattern, stroke, then the stroke and alpha settings.
func (r *run) styles(st script.Style) ([]drawing.Style, error) {
	var styles []drawing.Style

	if st.Fill != "" {
		c, err := csscolor.Parse(st.Fill)
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		styles = append(styles, drawing.FillColor(c))
	}
	if st.Pattern != "" {
		img, err := r.image(st.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		styles = append(styles, drawing.Pattern(img))
	}
	if st.Stroke != "" {
		c, err := csscolor.Parse(st.Stroke)
		if err != nil {
			return nil, fmt.Errorf("stroke: %w", err)
		}
		styles = append(styles, drawing.StrokeColor(c))
	}
	if st.LineWidth > 0 {
		styles = append(styles, drawing.LineWidth(st.LineWidth))
	}
	if st.LineCap != "" {
		c, ok := lineCaps[st.LineCap]
		if !ok {
			return nil, fmt.Errorf("%w: line cap %q", drawing.ErrInvalidArgument, st.LineCap)
		}
		styles = append(styles, drawing.LineCap(c))
	}
	if st.LineJoin != "" {
		j, ok := lineJoins[st.LineJoin]
		if !ok {
			return nil, fmt.Errorf("%w: line join %q", drawing.ErrInvalidArgument, st.LineJoin)
		}
		styles = append(styles, drawing.LineJoin(j))
	}
	if st.Dash != nil {
		styles = append(styles, drawing.Dash(st.Dash...))
	}
	if st.Alpha != nil {
		styles = append(styles, drawing.Alpha(*st.Alpha))
	}
	return styles, nil
}

func shapeOf(op script.Op) (drawing.Shape, error) {
	switch op.Shape {
	case script.ShapeRectangle:
		return drawing.Rectangle{}, nil
	case script.ShapeRounded:
		return drawing.RoundedRectangle{Radius: op.Radius}, nil
	case script.ShapeEllipse:
		return drawing.Ellipse{}, nil
	case script.ShapePolygon:
		pts := make([]ports.Point, len(op.Points))
		for i, p := range op.Points {
			pts[i] = ports.Point{X: p.X, Y: p.Y}
		}
		return drawing.Polygon{Points: pts}, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", drawing.ErrInvalidArgument, op.Shape)
	}
}

// imageCall picks the drawImage form from which rectangles the op sets.
// A source rectangle must have a size; a destination without one keeps
// the natural size.
func imageCall(src drawing.ImageSource, op script.Op) (drawing.ImageCall, error) {
	at := drawing.Point{X: op.X, Y: op.Y}
	if op.Dest != nil {
		at = drawing.Point{X: op.Dest.X, Y: op.Dest.Y}
	}
	scaled := op.Dest != nil && op.Dest.HasSize()

	if op.Src == nil {
		if scaled {
			return drawing.WholeImageScaled{Source: src, Dest: rectOf(*op.Dest)}, nil
		}
		return drawing.WholeImage{Source: src, Dest: at}, nil
	}

	if !op.Src.HasSize() {
		return nil, fmt.Errorf("%w: image source rectangle needs a width and height", drawing.ErrInvalidArgument)
	}
	if scaled {
		return drawing.SubImageScaled{Source: src, Src: rectOf(*op.Src), Dest: rectOf(*op.Dest)}, nil
	}
	return drawing.SubImage{Source: src, Src: rectOf(*op.Src), Dest: at}, nil
}

func rectOf(r script.Rect) drawing.Rect {
	return drawing.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
