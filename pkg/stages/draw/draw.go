// Package draw implements the stage that executes a draw script.
package draw

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
	"github.com/user/mosaic/pkg/textlayout"
)

// FontCatalog reports which font names are available.
type FontCatalog interface {
	Has(name string) bool
}

// Stage runs every op of a script, in order, against a fresh surface.
type Stage struct {
	fs     ports.FileSystem
	sink   ports.DebugSink
	logger ports.Logger
	fonts  FontCatalog
}

// Option configures a Stage.
type Option func(*Stage)

// WithFontCatalog enables warnings for fonts the host cannot resolve.
func WithFontCatalog(c FontCatalog) Option {
	return func(s *Stage) {
		s.fonts = c
	}
}

// NewStage creates a new draw stage. Images named by the script are read
// through fs.
func NewStage(fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger, opts ...Option) *Stage {
	s := &Stage{
		fs:     fs,
		sink:   sink,
		logger: logger.WithComponent("draw"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run holds the state of one Execute call.
type run struct {
	stage   *Stage
	input   pipeline.DrawInput
	surface *drawing.Surface
	images  map[string]image.Image
	warned  map[string]bool
}

// Execute creates the surface and draws every op onto it. The first
// failing op stops the run.
func (s *Stage) Execute(ctx context.Context, input pipeline.DrawInput) (pipeline.DrawResult, error) {
	if input.Target == nil {
		return pipeline.DrawResult{}, fmt.Errorf("draw: %w: no target", drawing.ErrInvalidArgument)
	}

	surface, err := s.newSurface(input)
	if err != nil {
		return pipeline.DrawResult{}, fmt.Errorf("create surface: %w", err)
	}

	r := &run{
		stage:   s,
		input:   input,
		surface: surface,
		images:  make(map[string]image.Image),
		warned:  make(map[string]bool),
	}

	ops := input.Script.Ops
	for i, op := range ops {
		select {
		case <-ctx.Done():
			return pipeline.DrawResult{Surface: surface, OpCount: i}, ctx.Err()
		default:
		}

		s.logger.Debug("Executing op %d/%d: %s", i+1, len(ops), op.Op)
		if err := r.execute(op); err != nil {
			s.logger.Error("Failed to draw op %d: %s", i+1, err)
			return pipeline.DrawResult{Surface: surface, OpCount: i}, fmt.Errorf("op %d (%s): %w", i+1, op.Op, err)
		}
		s.snapshot(i+1, op.Op, input.Target)
	}

	return pipeline.DrawResult{Surface: surface, OpCount: len(ops)}, nil
}

// newSurface merges the script's surface section over the defaults and
// paints the background.
func (s *Stage) newSurface(input pipeline.DrawInput) (*drawing.Surface, error) {
	d := input.Surface
	spec := input.Script.Surface

	width, height, scale := d.Width, d.Height, d.ScaleFactor
	if spec.Width > 0 {
		width = spec.Width
	}
	if spec.Height > 0 {
		height = spec.Height
	}
	if spec.ScaleFactor > 0 {
		scale = spec.ScaleFactor
	}
	if scale <= 0 {
		scale = 1
	}
	resizable, scalable := d.Resizable, d.Scalable
	if spec.Resizable != nil {
		resizable = *spec.Resizable
	}
	if spec.Scalable != nil {
		scalable = *spec.Scalable
	}

	background := d.Background
	if spec.Background != "" {
		c, err := csscolor.Parse(spec.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		background = c
	}

	surface, err := drawing.New(drawing.Options{
		Target:      input.Target,
		Width:       drawing.Int(width),
		Height:      drawing.Int(height),
		ScaleFactor: drawing.Float(scale),
		Resizable:   drawing.Bool(resizable),
		Scalable:    drawing.Bool(scalable),
	}, drawing.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	if background != nil {
		surface.DrawRect(0, 0,
			float64(surface.Width())/scale, float64(surface.Height())/scale,
			drawing.FillColor(background))
	}
	return surface, nil
}

func (s *Stage) snapshot(index int, op string, target ports.Target) {
	if !s.sink.Enabled() {
		return
	}
	it, ok := target.(ports.ImageTarget)
	if !ok {
		return
	}
	if err := s.sink.SaveSnapshot(index, op, it.Image()); err != nil {
		s.logger.Warn("Failed to save snapshot: %s", err)
		return
	}
	s.logger.Debug("Snapshot saved for op %d", index)
}

func (r *run) execute(op script.Op) error {
	s := r.surface

	switch op.Op {
	case script.OpClear:
		s.Clear()

	case script.OpRect:
		styles, err := r.styles(op.Style)
		if err != nil {
			return err
		}
		s.DrawRect(op.X, op.Y, op.Width, op.Height, styles...)

	case script.OpShape:
		shape, err := shapeOf(op)
		if err != nil {
			return err
		}
		styles, err := r.styles(op.Style)
		if err != nil {
			return err
		}
		s.DrawShape(shape, op.X, op.Y, op.Width, op.Height, styles...)

	case script.OpText, script.OpTextBlock:
		styles, err := r.styles(op.Style)
		if err != nil {
			return err
		}
		opts := r.textOptions(op)
		if err := opts.Validate(); err != nil {
			return err
		}
		if op.Op == script.OpText {
			s.DrawText(op.Text, op.X, op.Y, opts, styles...)
		} else {
			s.DrawTextBlock(op.Text, op.X, op.Y, op.Width, op.Height, opts, styles...)
		}

	case script.OpImage:
		img, err := r.image(op.Image)
		if err != nil {
			return err
		}
		call, err := imageCall(drawing.FromImage(img), op)
		if err != nil {
			return err
		}
		return s.DrawImage(call)

	case script.OpScale:
		return s.SetScaleFactor(op.Factor)

	case script.OpResize:
		// Check both sizes before changing either.
		if op.Width < 0 || op.Height < 0 {
			return fmt.Errorf("%w: negative size %vx%v", drawing.ErrInvalidArgument, op.Width, op.Height)
		}
		if err := s.SetWidth(int(op.Width)); err != nil {
			return err
		}
		return s.SetHeight(int(op.Height))

	default:
		return fmt.Errorf("%w: unknown op %q", drawing.ErrInvalidArgument, op.Op)
	}
	return nil
}

// textOptions fills unset text fields from the defaults. A size without
// a line height keeps the default proportion.
func (r *run) textOptions(op script.Op) textlayout.Options {
	opts := r.input.Text
	if op.Font != "" {
		opts.FontName = op.Font
	}
	if op.Size > 0 {
		if op.LineHeight == 0 && opts.FontSize > 0 {
			opts.LineHeight = op.Size * opts.LineHeight / opts.FontSize
		}
		opts.FontSize = op.Size
	}
	if op.LineHeight > 0 {
		opts.LineHeight = op.LineHeight
	}

	if c := r.stage.fonts; c != nil && !c.Has(opts.FontName) && !r.warned[opts.FontName] {
		r.warned[opts.FontName] = true
		r.stage.logger.Warn("Font %s not found, using fallback", opts.FontName)
	}
	return opts
}

// image loads and caches an image file relative to the asset directory.
func (r *run) image(path string) (image.Image, error) {
	if img, ok := r.images[path]; ok {
		return img, nil
	}

	full := path
	if !filepath.IsAbs(path) && r.input.AssetDir != "" {
		full = filepath.Join(r.input.AssetDir, path)
	}
	data, err := r.stage.fs.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, err := ggcanvas.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w: %v", path, drawing.ErrUnsupportedFormat, err)
	}

	r.images[path] = img
	return img, nil
}
