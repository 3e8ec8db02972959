package viewport

import (
	"errors"
	"reflect"
	"testing"

	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/mocks"
	"github.com/user/mosaic/pkg/ports"
)

func newTestSurface(t *testing.T, target *mocks.Target, resizable, scalable bool) *drawing.Surface {
	t.Helper()
	s, err := drawing.New(drawing.Options{
		Target:    target,
		Resizable: drawing.Bool(resizable),
		Scalable:  drawing.Bool(scalable),
	})
	if err != nil {
		t.Fatalf("drawing.New failed: %v", err)
	}
	target.Reset()
	return s
}

func TestViewport_ResizeOrder(t *testing.T) {
	target := mocks.NewTarget(0, 0)
	surface := newTestSurface(t, target, true, true)
	v := New(StaticHost{W: 320, H: 200, Scale: 2}, surface)

	if err := v.Resize(320, 200); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	want := []string{"SetTransform", "SetWidth", "SetHeight"}
	if got := target.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if surface.ScaleFactor() != 2 || surface.Width() != 320 || surface.Height() != 200 {
		t.Errorf("unexpected surface %dx%d at %v", surface.Width(), surface.Height(), surface.ScaleFactor())
	}
}

func TestViewport_ResizeRejected(t *testing.T) {
	target := mocks.NewTarget(10, 10)
	surface := newTestSurface(t, target, false, true)
	log := mocks.NewLogger()
	v := New(StaticHost{W: 50, H: 50}, surface, WithLogger(log))

	err := v.Resize(50, 50)
	if !errors.Is(err, drawing.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if len(target.CallsNamed("SetHeight")) != 0 {
		t.Error("height should not change after width was rejected")
	}
	if log.Count(ports.LevelWarn) != 1 {
		t.Errorf("expected one warning, got %d", log.Count(ports.LevelWarn))
	}

	if v.resizeErr != nil {
		t.Error("resize error kept after Resize returned")
	}
}

func TestViewport_UserResizeHandlersRunAfterSurface(t *testing.T) {
	target := mocks.NewTarget(0, 0)
	surface := newTestSurface(t, target, true, true)
	v := New(StaticHost{W: 1, H: 1}, surface)

	var seen Size
	v.OnResize.Add(func(s Size) {
		seen = s
		if surface.Width() != s.Width {
			t.Error("surface not resized before user handler")
		}
	})

	if err := v.Resize(64, 48); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if seen != (Size{Width: 64, Height: 48}) {
		t.Errorf("unexpected size %v", seen)
	}
}

func TestViewport_Sync(t *testing.T) {
	target := mocks.NewTarget(0, 0)
	surface := newTestSurface(t, target, true, true)
	v := New(StaticHost{W: 30, H: 40}, surface)

	if err := v.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if v.Width() != 30 || v.Height() != 40 || v.ScaleFactor() != 1 {
		t.Errorf("unexpected host geometry %dx%d@%v", v.Width(), v.Height(), v.ScaleFactor())
	}
	if surface.Width() != 30 || surface.Height() != 40 {
		t.Errorf("unexpected surface size %dx%d", surface.Width(), surface.Height())
	}
	if v.Surface() != surface {
		t.Error("unexpected surface")
	}
}

func TestViewport_PointerEvents(t *testing.T) {
	v := New(StaticHost{}, nil)

	var clicks []Point
	v.OnClick.Add(func(p Point) { clicks = append(clicks, p) })
	v.OnClick.Invoke(Point{X: 1, Y: 2})

	if len(clicks) != 1 || clicks[0] != (Point{X: 1, Y: 2}) {
		t.Errorf("unexpected clicks %v", clicks)
	}
	if v.OnPointerDown.Len() != 0 || v.OnPointerMove.Len() != 0 || v.OnPointerUp.Len() != 0 {
		t.Error("expected empty pointer lists")
	}
	if err := v.Resize(5, 5); err != nil {
		t.Errorf("resize without surface failed: %v", err)
	}
}
