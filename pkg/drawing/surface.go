// Package drawing provides the drawing surface: a canvas that owns its
// backing target, enforces resize and scale policy, and folds style
// modifiers into every draw call.
package drawing

import (
	"fmt"
	"image"

	"github.com/user/mosaic/pkg/adapters/logger"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/textlayout"
)

// Surface draws rectangles, shapes, images and text onto a target.
//
// A Surface is not safe for concurrent use. All calls are expected on the
// host's drawing thread.
type Surface struct {
	target      ports.Target
	ctx         ports.Context2D
	scaleFactor float64
	resizable   bool
	scalable    bool
	logger      ports.Logger
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithLogger sets the logger used for surface diagnostics.
func WithLogger(l ports.Logger) SurfaceOption {
	return func(s *Surface) {
		s.logger = l.WithComponent("surface")
	}
}

// New creates a surface from a partial configuration.
//
// The initial width, height and scale factor are always applied, even
// when the surface is neither resizable nor scalable; the flags take
// effect once construction is done.
func New(opts Options, options ...SurfaceOption) (*Surface, error) {
	cfg := opts.Merge()

	s := &Surface{
		target: cfg.Target,
		ctx:    cfg.Target.Context2D(),
		logger: logger.NewNoop(),
	}
	for _, opt := range options {
		opt(s)
	}

	s.ctx.SetImageSmoothing(false)
	if hinter, ok := s.target.(ports.PixelHinter); ok {
		hinter.SetPixelated(true)
	}

	s.resizable = true
	s.scalable = true

	if err := s.apply(cfg); err != nil {
		return nil, err
	}

	s.resizable = cfg.Resizable
	s.scalable = cfg.Scalable

	s.logger.Debug("Surface created: %dx%d at scale %.2f", s.Width(), s.Height(), s.scaleFactor)
	return s, nil
}

// apply writes the merged configuration through the public setters.
func (s *Surface) apply(cfg Config) error {
	if err := s.SetHeight(cfg.Height); err != nil {
		return err
	}
	if err := s.SetWidth(cfg.Width); err != nil {
		return err
	}
	return s.SetScaleFactor(cfg.ScaleFactor)
}

// Width returns the target width in device pixels.
func (s *Surface) Width() int { return s.target.Width() }

// Height returns the target height in device pixels.
func (s *Surface) Height() int { return s.target.Height() }

// SetWidth resizes the target. It fails with ErrAccessDenied unless the
// surface is resizable.
func (s *Surface) SetWidth(width int) error {
	if !s.resizable {
		s.logger.Debug("Rejected width change on fixed-size surface")
		return fmt.Errorf("set width: %w: surface is not resizable", ErrAccessDenied)
	}
	if width < 0 {
		return fmt.Errorf("set width: %w: negative width %d", ErrInvalidArgument, width)
	}
	s.target.SetWidth(width)
	return nil
}

// SetHeight resizes the target. It fails with ErrAccessDenied unless the
// surface is resizable.
func (s *Surface) SetHeight(height int) error {
	if !s.resizable {
		s.logger.Debug("Rejected height change on fixed-size surface")
		return fmt.Errorf("set height: %w: surface is not resizable", ErrAccessDenied)
	}
	if height < 0 {
		return fmt.Errorf("set height: %w: negative height %d", ErrInvalidArgument, height)
	}
	s.target.SetHeight(height)
	return nil
}

// ScaleFactor returns the current uniform scale.
func (s *Surface) ScaleFactor() float64 { return s.scaleFactor }

// SetScaleFactor sets the uniform scale and resets the context transform
// to it. It fails with ErrAccessDenied unless the surface is scalable.
func (s *Surface) SetScaleFactor(factor float64) error {
	if !s.scalable {
		s.logger.Debug("Rejected scale change on fixed-scale surface")
		return fmt.Errorf("set scale factor: %w: surface is not scalable", ErrAccessDenied)
	}
	if factor <= 0 {
		return fmt.Errorf("set scale factor: %w: scale must be positive, got %v", ErrInvalidArgument, factor)
	}
	s.scaleFactor = factor
	s.ctx.SetTransform(factor, 0, 0, factor, 0, 0)
	return nil
}

// Resizable reports whether width and height may change.
func (s *Surface) Resizable() bool { return s.resizable }

// Scalable reports whether the scale factor may change.
func (s *Surface) Scalable() bool { return s.scalable }

// Target returns the backing target.
func (s *Surface) Target() ports.Target { return s.target }

// DrawRect draws a rectangle. It is filled when a style sets a fill and
// stroked when a style sets a stroke.
func (s *Surface) DrawRect(x, y, width, height float64, styles ...Style) {
	s.ctx.Save()
	defer s.ctx.Restore()

	var props ports.Props
	ApplyStyles(&props, styles, s)
	s.ctx.Apply(props)

	s.ctx.BeginPath()
	s.ctx.Rect(x, y, width, height)

	if props.HasFill() {
		s.ctx.Fill()
	}
	if props.HasStroke() {
		s.ctx.Stroke()
	}
}

// DrawShape draws shape sized to width x height with its origin at (x, y).
// A nil shape draws nothing.
func (s *Surface) DrawShape(shape Shape, x, y, width, height float64, styles ...Style) {
	if shape == nil {
		return
	}
	path := shape.Path(width, height)

	s.ctx.Save()
	defer s.ctx.Restore()

	var props ports.Props
	ApplyStyles(&props, styles, s)
	s.ctx.Apply(props)
	s.ctx.Translate(x, y)

	if props.HasFill() {
		s.ctx.FillPath(path)
	}
	if props.HasStroke() {
		s.ctx.StrokePath(path)
	}
}

// DrawImage draws an image in one of the ImageCall forms. A Surface used
// as the source is replaced by its target's contents.
func (s *Surface) DrawImage(call ImageCall) error {
	if call == nil || call.source() == nil {
		return fmt.Errorf("draw image: %w: missing image", ErrInvalidArgument)
	}
	img, err := call.source().sourceImage()
	if err != nil {
		return fmt.Errorf("draw image: %w", err)
	}

	s.ctx.Save()
	defer s.ctx.Restore()

	call.draw(s.ctx, img)
	return nil
}

// DrawImageArgs draws an image from positional coordinates. See
// ImageCallFromArgs for the accepted forms.
func (s *Surface) DrawImageArgs(src ImageSource, args ...float64) error {
	call, err := ImageCallFromArgs(src, args...)
	if err != nil {
		s.logger.Debug("Rejected drawImage with %d coordinates", len(args))
		return fmt.Errorf("draw image: %w", err)
	}
	return s.DrawImage(call)
}

func (s *Surface) sourceImage() (image.Image, error) {
	it, ok := s.target.(ports.ImageTarget)
	if !ok {
		return nil, fmt.Errorf("%w: target of type %T cannot be read back", ErrInvalidArgument, s.target)
	}
	return it.Image(), nil
}

// DrawText draws a single line of text with its baseline at (x, y).
func (s *Surface) DrawText(text string, x, y float64, opts textlayout.Options, styles ...Style) {
	s.ctx.Save()
	defer s.ctx.Restore()

	var props ports.Props
	ApplyStyles(&props, styles, s)
	props.Font = textlayout.FontString(opts)
	s.ctx.Apply(props)

	if props.HasFill() {
		s.ctx.FillText(text, x, y)
	}
	if props.HasStroke() {
		s.ctx.StrokeText(text, x, y)
	}
}

// DrawTextBlock wraps text to width and draws one line per line height,
// each centered vertically in its line box. height is not used to clip;
// lines past it are still drawn.
func (s *Surface) DrawTextBlock(text string, x, y, width, height float64, opts textlayout.Options, styles ...Style) {
	s.ctx.Save()
	defer s.ctx.Restore()

	var props ports.Props
	ApplyStyles(&props, styles, s)
	props.Font = textlayout.FontString(opts)
	s.ctx.Apply(props)

	lines := textlayout.Wrap(s, text, width, opts)

	for i, line := range lines {
		baseline := y + float64(i)*opts.LineHeight + line.Metrics.Ascent
		baseline += (opts.LineHeight - line.Metrics.Height()) / 2

		if props.HasFill() {
			s.ctx.FillText(line.Text, x, baseline)
		}
		if props.HasStroke() {
			s.ctx.StrokeText(line.Text, x, baseline)
		}
	}
}

// MeasureText measures text with the font of opts, using the actual glyph
// bounding box. The host's result is passed through unchanged, including
// for empty strings.
func (s *Surface) MeasureText(text string, opts textlayout.Options) textlayout.Metrics {
	s.ctx.Save()
	defer s.ctx.Restore()

	s.ctx.SetFont(textlayout.FontString(opts))
	m := s.ctx.MeasureText(text)

	return textlayout.Metrics{
		Ascent:  m.ActualBoundingBoxAscent,
		Descent: m.ActualBoundingBoxDescent,
		Width:   m.Width,
	}
}

// Clear makes the whole surface transparent.
func (s *Surface) Clear() {
	s.ctx.ClearRect(0, 0, float64(s.Width()), float64(s.Height()))
}

var _ textlayout.Measurer = (*Surface)(nil)
