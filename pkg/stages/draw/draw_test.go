package draw

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"testing"

	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/adapters/logger"
	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/mocks"
	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
)

func mustParse(t *testing.T, src string) script.Document {
	t.Helper()
	doc, err := script.Parse([]byte(src))
	if err != nil {
		t.Fatalf("script.Parse failed: %v", err)
	}
	return doc
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newInput(doc script.Document, target ports.Target) pipeline.DrawInput {
	return pipeline.DrawInput{
		Script:  doc,
		Target:  target,
		Surface: pipeline.DefaultSurface(),
		Text:    pipeline.DefaultText(),
	}
}

func TestStage_Execute_Rect(t *testing.T) {
	doc := mustParse(t, `
surface: {width: 100, height: 50, scale_factor: 2}
ops:
  - op: rect
    x: 1
    y: 2
    width: 3
    height: 4
    style: {fill: red, stroke: blue, line_width: 2}
`)
	target := mocks.NewTarget(0, 0)
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput(doc, target))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.OpCount != 1 || result.Surface.Width() != 100 || result.Surface.ScaleFactor() != 2 {
		t.Errorf("unexpected result %+v", result)
	}

	ctx := target.Context()
	props := ctx.LastApplied()
	if props.FillStyle != (drawing.Solid{Color: csscolor.MustParse("red")}) {
		t.Errorf("unexpected fill %v", props.FillStyle)
	}
	if props.StrokeStyle == nil || props.LineWidth != 2 {
		t.Errorf("unexpected stroke %+v", props)
	}
	if rects := target.CallsNamed("Rect"); len(rects) != 1 {
		t.Errorf("expected one Rect call, got %v", rects)
	}
}

func TestStage_Execute_Background(t *testing.T) {
	doc := mustParse(t, `
surface: {width: 10, height: 10, background: "#00ff00"}
ops: []
`)
	target := ggcanvas.New(0, 0)
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), newInput(doc, target)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	r, g, b, a := target.Image().At(9, 9).RGBA()
	if r != 0 || g>>8 != 0xff || b != 0 || a>>8 != 0xff {
		t.Errorf("expected green background, got %v", target.Image().At(9, 9))
	}
}

func TestStage_Execute_InvalidBackground(t *testing.T) {
	doc := mustParse(t, `
surface: {background: "not-a-color"}
ops: []
`)
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), newInput(doc, mocks.NewTarget(0, 0)))
	if !errors.Is(err, drawing.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestStage_Execute_StopsAtFailingOp(t *testing.T) {
	doc := mustParse(t, `
surface: {width: 10, height: 10, resizable: false}
ops:
  - op: clear
  - op: resize
    width: 20
    height: 20
  - op: clear
`)
	target := mocks.NewTarget(0, 0)
	log := mocks.NewLogger()
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), log)

	result, err := stage.Execute(context.Background(), newInput(doc, target))
	if !errors.Is(err, drawing.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if result.OpCount != 1 {
		t.Errorf("expected 1 completed op, got %d", result.OpCount)
	}
	if len(target.CallsNamed("ClearRect")) != 1 {
		t.Error("ops after the failure should not run")
	}
	if log.Count(ports.LevelError) != 1 {
		t.Errorf("expected one error log, got %d", log.Count(ports.LevelError))
	}
}

func TestStage_Execute_ScaleAndResize(t *testing.T) {
	doc := mustParse(t, `
surface: {width: 10, height: 10, resizable: true, scalable: true}
ops:
  - op: scale
    factor: 3
  - op: resize
    width: 30
    height: 40
`)
	target := mocks.NewTarget(0, 0)
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput(doc, target))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Surface.ScaleFactor() != 3 || target.Width() != 30 || target.Height() != 40 {
		t.Errorf("unexpected surface %dx%d@%v", target.Width(), target.Height(), result.Surface.ScaleFactor())
	}
}

func TestStage_Execute_ResizeRejectsNegativeHeight(t *testing.T) {
	resizable := true
	doc := script.Document{
		Surface: script.Surface{Width: 10, Height: 10, Resizable: &resizable},
		Ops:     []script.Op{{Op: script.OpResize, Width: 30, Height: -1}},
	}
	target := mocks.NewTarget(0, 0)
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), newInput(doc, target))
	if !errors.Is(err, drawing.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if target.Width() != 10 || target.Height() != 10 {
		t.Errorf("expected 10x10 to be kept, got %dx%d", target.Width(), target.Height())
	}
}

func TestStage_Execute_Image(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("assets/logo.png", pngBytes(t, 4, 4, color.RGBA{255, 0, 0, 255}))

	doc := mustParse(t, `
ops:
  - op: image
    image: logo.png
    dest: {x: 2, y: 3, width: 8, height: 8}
  - op: image
    image: logo.png
    src: {x: 0, y: 0, width: 2, height: 2}
    x: 5
    y: 6
`)
	target := mocks.NewTarget(0, 0)
	stage := NewStage(fs, mocks.NewDebugSink(false), logger.NewNoop())
	input := newInput(doc, target)
	input.AssetDir = "assets"

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	scaled := target.CallsNamed("DrawImageScaled")
	if len(scaled) != 1 || !reflect.DeepEqual(scaled[0].Args, []interface{}{2.0, 3.0, 8.0, 8.0}) {
		t.Errorf("unexpected scaled draw %v", scaled)
	}
	region := target.CallsNamed("DrawImageRegion")
	if len(region) != 1 || !reflect.DeepEqual(region[0].Args, []interface{}{0.0, 0.0, 2.0, 2.0, 5.0, 6.0, 2.0, 2.0}) {
		t.Errorf("unexpected region draw %v", region)
	}
}

func TestStage_Execute_MissingImage(t *testing.T) {
	doc := mustParse(t, "ops: [{op: image, image: missing.png}]")
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), newInput(doc, mocks.NewTarget(0, 0))); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestStage_Execute_Text(t *testing.T) {
	doc := mustParse(t, `
ops:
  - op: text
    text: Hi
    x: 1
    y: 2
    font: Go Mono
    size: 32
`)
	target := mocks.NewTarget(0, 0)
	log := mocks.NewLogger()
	catalog := catalogFunc(func(name string) bool { return false })
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), log, WithFontCatalog(catalog))

	if _, err := stage.Execute(context.Background(), newInput(doc, target)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if font := target.Context().LastApplied().Font; font != "32px Go Mono" {
		t.Errorf("unexpected font %q", font)
	}
	if log.Count(ports.LevelWarn) != 1 {
		t.Errorf("expected missing font warning, got %d", log.Count(ports.LevelWarn))
	}
}

func TestStage_Execute_Snapshots(t *testing.T) {
	doc := mustParse(t, `
surface: {width: 8, height: 8}
ops:
  - op: rect
    width: 4
    height: 4
    style: {fill: black}
  - op: clear
`)
	sink := mocks.NewDebugSink(true)
	stage := NewStage(mocks.NewFileSystem(), sink, logger.NewNoop())

	if _, err := stage.Execute(context.Background(), newInput(doc, ggcanvas.New(0, 0))); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(sink.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(sink.Snapshots))
	}
	if s := sink.Snapshots[0]; s.Index != 1 || s.Op != script.OpRect || s.Image == nil {
		t.Errorf("unexpected snapshot %+v", s)
	}
}

func TestStage_Execute_Cancelled(t *testing.T) {
	doc := mustParse(t, "ops: [{op: clear}]")
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, newInput(doc, mocks.NewTarget(0, 0))); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStage_Execute_NoTarget(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), mocks.NewDebugSink(false), logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.DrawInput{})
	if !errors.Is(err, drawing.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

type catalogFunc func(string) bool

func (f catalogFunc) Has(name string) bool { return f(name) }
