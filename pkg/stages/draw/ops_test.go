package draw

import (
	"errors"
	"testing"

	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/script"
)

func TestImageCall(t *testing.T) {
	src := drawing.FromImage(nil)

	tests := []struct {
		name string
		op   script.Op
		want drawing.ImageCall
	}{
		{
			name: "whole at op position",
			op:   script.Op{X: 1, Y: 2},
			want: drawing.WholeImage{Source: src, Dest: drawing.Point{X: 1, Y: 2}},
		},
		{
			name: "whole at dest position",
			op:   script.Op{X: 1, Y: 2, Dest: &script.Rect{X: 5, Y: 6}},
			want: drawing.WholeImage{Source: src, Dest: drawing.Point{X: 5, Y: 6}},
		},
		{
			name: "whole scaled",
			op:   script.Op{Dest: &script.Rect{X: 5, Y: 6, Width: 7, Height: 8}},
			want: drawing.WholeImageScaled{Source: src, Dest: drawing.Rect{X: 5, Y: 6, Width: 7, Height: 8}},
		},
		{
			name: "region",
			op:   script.Op{X: 3, Y: 4, Src: &script.Rect{X: 1, Y: 1, Width: 2, Height: 2}},
			want: drawing.SubImage{Source: src, Src: drawing.Rect{X: 1, Y: 1, Width: 2, Height: 2}, Dest: drawing.Point{X: 3, Y: 4}},
		},
		{
			name: "region scaled",
			op: script.Op{
				Src:  &script.Rect{X: 1, Y: 1, Width: 2, Height: 2},
				Dest: &script.Rect{X: 0, Y: 0, Width: 20, Height: 20},
			},
			want: drawing.SubImageScaled{
				Source: src,
				Src:    drawing.Rect{X: 1, Y: 1, Width: 2, Height: 2},
				Dest:   drawing.Rect{Width: 20, Height: 20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := imageCall(src, tt.op)
			if err != nil {
				t.Fatalf("imageCall failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, err := imageCall(src, script.Op{Src: &script.Rect{X: 1}}); !errors.Is(err, drawing.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unsized source, got %v", err)
	}
}

func TestShapeOf(t *testing.T) {
	shape, err := shapeOf(script.Op{Shape: script.ShapeRounded, Radius: 4})
	if err != nil || shape != (drawing.RoundedRectangle{Radius: 4}) {
		t.Errorf("unexpected shape %v, %v", shape, err)
	}

	poly, err := shapeOf(script.Op{Shape: script.ShapePolygon, Points: []script.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}})
	if err != nil || len(poly.(drawing.Polygon).Points) != 2 {
		t.Errorf("unexpected polygon %v, %v", poly, err)
	}

	if _, err := shapeOf(script.Op{Shape: "star"}); !errors.Is(err, drawing.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRun_Styles(t *testing.T) {
	r := &run{}
	alpha := 0.5

	styles, err := r.styles(script.Style{
		Fill:      "red",
		Stroke:    "#00f",
		LineWidth: 3,
		LineCap:   "round",
		LineJoin:  "bevel",
		Dash:      []float64{1, 2},
		Alpha:     &alpha,
	})
	if err != nil {
		t.Fatalf("styles failed: %v", err)
	}
	if len(styles) != 7 {
		t.Errorf("expected 7 styles, got %d", len(styles))
	}

	if _, err := r.styles(script.Style{Fill: "nope"}); !errors.Is(err, drawing.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := r.styles(script.Style{LineCap: "pointy"}); !errors.Is(err, drawing.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
