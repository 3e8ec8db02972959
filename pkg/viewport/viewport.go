// Package viewport connects a drawing surface to the window that hosts it.
//
// A host reports the window geometry; the viewport fans input and resize
// events out to handler lists and keeps the surface sized to the window.
package viewport

import (
	"fmt"

	"github.com/user/mosaic/pkg/adapters/logger"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/ports"
)

// Host reports the geometry of the window a viewport fills.
type Host interface {
	// Width returns the window width in CSS pixels.
	Width() int

	// Height returns the window height in CSS pixels.
	Height() int

	// ScaleFactor returns the device pixel ratio.
	ScaleFactor() float64
}

// Point is a pointer position in CSS pixels.
type Point struct {
	X, Y float64
}

// Size is a window size in CSS pixels.
type Size struct {
	Width, Height int
}

// Viewport owns the event handler lists of one host window.
type Viewport struct {
	host    Host
	surface *drawing.Surface
	logger  ports.Logger

	OnClick       *EventHandlerList[Point]
	OnPointerDown *EventHandlerList[Point]
	OnPointerMove *EventHandlerList[Point]
	OnPointerUp   *EventHandlerList[Point]
	OnResize      *EventHandlerList[Size]

	resizeErr error
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithLogger sets the logger used for resize propagation.
func WithLogger(l ports.Logger) Option {
	return func(v *Viewport) {
		v.logger = l.WithComponent("viewport")
	}
}

// New creates a viewport for host drawing onto surface. The surface is
// resized along with the host; it must be resizable and scalable for that
// to succeed.
func New(host Host, surface *drawing.Surface, opts ...Option) *Viewport {
	v := &Viewport{
		host:          host,
		surface:       surface,
		logger:        logger.NewNoop(),
		OnClick:       &EventHandlerList[Point]{},
		OnPointerDown: &EventHandlerList[Point]{},
		OnPointerMove: &EventHandlerList[Point]{},
		OnPointerUp:   &EventHandlerList[Point]{},
		OnResize:      &EventHandlerList[Size]{},
	}
	for _, opt := range opts {
		opt(v)
	}

	v.OnResize.Add(v.fitSurface)
	return v
}

// fitSurface sets the scale factor, then the width, then the height,
// stopping at the first rejected change.
func (v *Viewport) fitSurface(size Size) {
	if v.surface == nil {
		return
	}
	v.logger.Debug("Resizing viewport to %dx%d", size.Width, size.Height)

	err := v.surface.SetScaleFactor(v.host.ScaleFactor())
	if err == nil {
		err = v.surface.SetWidth(size.Width)
	}
	if err == nil {
		err = v.surface.SetHeight(size.Height)
	}
	if err != nil {
		v.logger.Warn("Surface rejected resize: %s", err)
		v.resizeErr = fmt.Errorf("resize surface to %dx%d: %w", size.Width, size.Height, err)
	}
}

// Resize dispatches a resize event and returns any error the surface
// reported while following it.
func (v *Viewport) Resize(width, height int) error {
	v.resizeErr = nil
	v.OnResize.Invoke(Size{Width: width, Height: height})
	err := v.resizeErr
	v.resizeErr = nil
	return err
}

// Sync resizes to the host's current geometry.
func (v *Viewport) Sync() error {
	return v.Resize(v.host.Width(), v.host.Height())
}

// Width returns the host width.
func (v *Viewport) Width() int { return v.host.Width() }

// Height returns the host height.
func (v *Viewport) Height() int { return v.host.Height() }

// ScaleFactor returns the host device pixel ratio.
func (v *Viewport) ScaleFactor() float64 { return v.host.ScaleFactor() }

// Surface returns the surface drawn onto this viewport.
func (v *Viewport) Surface() *drawing.Surface { return v.surface }

// StaticHost is a Host with fixed geometry, used for offscreen rendering.
type StaticHost struct {
	W, H  int
	Scale float64
}

// Width returns W.
func (h StaticHost) Width() int { return h.W }

// Height returns H.
func (h StaticHost) Height() int { return h.H }

// ScaleFactor returns Scale, or 1 when unset.
func (h StaticHost) ScaleFactor() float64 {
	if h.Scale <= 0 {
		return 1
	}
	return h.Scale
}
