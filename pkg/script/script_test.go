package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/user/mosaic/pkg/drawing"
)

const sample = `
surface:
  width: 200
  height: 100
  scale_factor: 2
  background: "#ffffff"
ops:
  - op: rect
    x: 10
    y: 10
    width: 50
    height: 20
    style:
      fill: red
      stroke: "rgb(0, 0, 255)"
      line_width: 2
  - op: shape
    shape: polygon
    x: 0
    y: 0
    width: 40
    height: 40
    points:
      - {x: 0.5, y: 0}
      - {x: 1, y: 1}
      - {x: 0, y: 1}
  - op: text
    text: Hello
    x: 5
    y: 80
    font: Go
    size: 12
  - op: image
    image: logo.png
    x: 1
    y: 2
    dest: {x: 10, y: 10, width: 32, height: 32}
  - op: clear
`

func TestParse_Sample(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.Surface.Width != 200 || doc.Surface.ScaleFactor != 2 || doc.Surface.Background != "#ffffff" {
		t.Errorf("unexpected surface %+v", doc.Surface)
	}
	if len(doc.Ops) != 5 {
		t.Fatalf("expected 5 ops, got %d", len(doc.Ops))
	}

	rect := doc.Ops[0]
	if rect.Op != OpRect || rect.Width != 50 || rect.Style.Fill != "red" || rect.Style.LineWidth != 2 {
		t.Errorf("unexpected rect op %+v", rect)
	}
	if pts := doc.Ops[1].Points; len(pts) != 3 || pts[0] != (Point{X: 0.5, Y: 0}) {
		t.Errorf("unexpected polygon points %v", pts)
	}
	if img := doc.Ops[3]; img.Dest == nil || !img.Dest.HasSize() || img.Src != nil {
		t.Errorf("unexpected image op %+v", img)
	}
}

func TestParse_JSONInput(t *testing.T) {
	doc, err := Parse([]byte(`{"ops":[{"op":"scale","factor":1.5}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Ops[0].Factor != 1.5 {
		t.Errorf("unexpected factor %v", doc.Ops[0].Factor)
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing ops", "surface: {width: 10}"},
		{"unknown op", "ops: [{op: spin}]"},
		{"rect without size", "ops: [{op: rect, x: 1, y: 1}]"},
		{"shape without kind", "ops: [{op: shape, width: 1, height: 1}]"},
		{"polygon without points", "ops: [{op: shape, shape: polygon, width: 1, height: 1}]"},
		{"text without text", "ops: [{op: text, x: 0, y: 0}]"},
		{"negative width", "surface: {width: -1}\nops: []"},
		{"zero scale", "ops: [{op: scale, factor: 0}]"},
		{"alpha out of range", "ops: [{op: clear, style: {alpha: 2}}]"},
		{"unknown field", "ops: [{op: clear, colour: red}]"},
		{"bad line cap", "ops: [{op: rect, width: 1, height: 1, style: {line_cap: pointy}}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.script))
			if !errors.Is(err, ErrInvalidScript) {
				t.Fatalf("expected ErrInvalidScript, got %v", err)
			}
			if !errors.Is(err, drawing.ErrInvalidArgument) {
				t.Error("expected error to match drawing.ErrInvalidArgument")
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "ops: [", "- just\n- a list"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrInvalidScript) {
			t.Errorf("Parse(%q): expected ErrInvalidScript, got %v", in, err)
		}
	}
}

func TestDocument_JSON(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"op": "rect"`) {
		t.Errorf("unexpected JSON %s", data)
	}
	if err := Validate(data); err != nil {
		t.Errorf("re-encoded document does not validate: %v", err)
	}
}

func TestSchema_IsCopy(t *testing.T) {
	s := Schema()
	s[0] = 'x'
	if Schema()[0] == 'x' {
		t.Error("Schema returned shared buffer")
	}
}
