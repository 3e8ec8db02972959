// Package script decodes draw scripts: a surface description followed by
// drawing operations that are executed once, in order.
//
// Scripts are written in YAML and validated against an embedded JSON
// schema before use.
package script

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/user/mosaic/pkg/drawing"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalidScript is returned for scripts that fail to decode or do not
// conform to the schema. It matches drawing.ErrInvalidArgument.
var ErrInvalidScript = fmt.Errorf("invalid draw script: %w", drawing.ErrInvalidArgument)

// Op kinds.
const (
	OpClear     = "clear"
	OpRect      = "rect"
	OpShape     = "shape"
	OpText      = "text"
	OpTextBlock = "text_block"
	OpImage     = "image"
	OpScale     = "scale"
	OpResize    = "resize"
)

// Shape kinds.
const (
	ShapeRectangle = "rectangle"
	ShapeRounded   = "rounded"
	ShapeEllipse   = "ellipse"
	ShapePolygon   = "polygon"
)

// Document is a decoded draw script.
type Document struct {
	Surface Surface `json:"surface,omitempty" yaml:"surface,omitempty"`
	Ops     []Op    `json:"ops" yaml:"ops"`
}

// Surface describes the surface a script draws on. Zero values defer to
// the caller's defaults.
type Surface struct {
	Width       int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int     `json:"height,omitempty" yaml:"height,omitempty"`
	ScaleFactor float64 `json:"scale_factor,omitempty" yaml:"scale_factor,omitempty"`
	Resizable   *bool   `json:"resizable,omitempty" yaml:"resizable,omitempty"`
	Scalable    *bool   `json:"scalable,omitempty" yaml:"scalable,omitempty"`
	Background  string  `json:"background,omitempty" yaml:"background,omitempty"`
}

// Op is one drawing operation. Which fields apply depends on Op.
type Op struct {
	Op         string  `json:"op" yaml:"op"`
	X          float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y          float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width      float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Shape      string  `json:"shape,omitempty" yaml:"shape,omitempty"`
	Radius     float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Points     []Point `json:"points,omitempty" yaml:"points,omitempty"`
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	Font       string  `json:"font,omitempty" yaml:"font,omitempty"`
	Size       float64 `json:"size,omitempty" yaml:"size,omitempty"`
	LineHeight float64 `json:"line_height,omitempty" yaml:"line_height,omitempty"`
	Image      string  `json:"image,omitempty" yaml:"image,omitempty"`
	Src        *Rect   `json:"src,omitempty" yaml:"src,omitempty"`
	Dest       *Rect   `json:"dest,omitempty" yaml:"dest,omitempty"`
	Factor     float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
	Style      Style   `json:"style,omitempty" yaml:"style,omitempty"`
}

// Point is a polygon vertex in unit coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an image source or destination rectangle. A zero size means
// the natural size.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// HasSize reports whether both dimensions are set.
func (r Rect) HasSize() bool { return r.Width > 0 && r.Height > 0 }

// Style lists the style modifiers of an op, applied in field order.
type Style struct {
	Fill      string    `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke    string    `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	Pattern   string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	LineWidth float64   `json:"line_width,omitempty" yaml:"line_width,omitempty"`
	LineCap   string    `json:"line_cap,omitempty" yaml:"line_cap,omitempty"`
	LineJoin  string    `json:"line_join,omitempty" yaml:"line_join,omitempty"`
	Dash      []float64 `json:"dash,omitempty" yaml:"dash,omitempty"`
	Alpha     *float64  `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// Parse decodes YAML (or JSON, which is valid YAML) and validates it.
func Parse(data []byte) (Document, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if raw == nil {
		return Document{}, fmt.Errorf("%w: empty document", ErrInvalidScript)
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := Validate(doc); err != nil {
		return Document{}, err
	}

	var d Document
	if err := json.Unmarshal(doc, &d); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	return d, nil
}

// Validate checks a JSON document against the script schema.
func Validate(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(msgs, "; "))
}

// JSON returns the document as indented JSON.
func (d Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Schema returns the embedded JSON schema.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}
