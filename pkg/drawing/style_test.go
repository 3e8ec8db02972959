package drawing

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/mosaic/pkg/ports"
)

func TestApplyStyles_Order(t *testing.T) {
	var props ports.Props
	ApplyStyles(&props, []Style{Stroke(Solid{red}, 4), LineWidth(2)}, nil)
	if props.LineWidth != 2 {
		t.Errorf("expected line width 2, got %v", props.LineWidth)
	}

	props = ports.Props{}
	ApplyStyles(&props, []Style{LineWidth(2), Stroke(Solid{red}, 4)}, nil)
	if props.LineWidth != 4 {
		t.Errorf("expected line width 4, got %v", props.LineWidth)
	}
}

func TestApplyStyles_EmptyLeavesPropsUnset(t *testing.T) {
	var props ports.Props
	ApplyStyles(&props, nil, nil)

	if props.HasFill() || props.HasStroke() {
		t.Error("expected no fill or stroke")
	}
}

func TestStyles_Group(t *testing.T) {
	var props ports.Props
	group := Styles(FillColor(red), LineCap(ports.LineCapRound), nil)
	ApplyStyles(&props, []Style{group, FillColor(blue)}, nil)

	if props.FillStyle.ColorAt(0, 0) != blue {
		t.Error("expected later style to override group")
	}
	if props.LineCap != ports.LineCapRound {
		t.Errorf("expected round cap, got %v", props.LineCap)
	}
}

func TestStyleFunc_ReceivesSurface(t *testing.T) {
	s, _ := newMockSurface(t, Options{ScaleFactor: Float(2)})

	var seen float64
	style := StyleFunc(func(props *ports.Props, surface *Surface) {
		seen = surface.ScaleFactor()
		props.LineWidth = 1 / seen
	})
	s.DrawRect(0, 0, 1, 1, style)

	if seen != 2 {
		t.Errorf("expected style to see scale 2, got %v", seen)
	}
}

func TestStyles_DashAndAlpha(t *testing.T) {
	var props ports.Props
	ApplyStyles(&props, []Style{Dash(4, 2), Alpha(0.5), LineJoin(ports.LineJoinBevel)}, nil)

	if len(props.Dash) != 2 || props.Dash[0] != 4 {
		t.Errorf("unexpected dash %v", props.Dash)
	}
	if props.Alpha == nil || *props.Alpha != 0.5 {
		t.Errorf("unexpected alpha %v", props.Alpha)
	}
	if props.LineJoin != ports.LineJoinBevel {
		t.Errorf("unexpected join %v", props.LineJoin)
	}
}

func TestImagePattern_Repeats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, red)
	p := ImagePattern{Image: img}

	if got := p.ColorAt(3, 2); got != color.Color(red) {
		t.Errorf("expected red at (3,2), got %v", got)
	}
	if got := p.ColorAt(-1, 0); got != color.Color(red) {
		t.Errorf("expected red at (-1,0), got %v", got)
	}
}

func TestImagePattern_EmptyImage(t *testing.T) {
	p := ImagePattern{Image: image.NewRGBA(image.Rectangle{})}
	if _, _, _, a := p.ColorAt(0, 0).RGBA(); a != 0 {
		t.Error("expected transparent")
	}
}
