package drawing

import (
	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/ports"
)

// Options is a partial surface configuration. Nil fields fall back to
// defaults when merged.
type Options struct {
	// Target is the backing drawable. Defaults to an empty 0x0 raster
	// target.
	Target ports.Target

	// Width and Height default to the target's size.
	Width  *int
	Height *int

	// ScaleFactor defaults to 1.
	ScaleFactor *float64

	// Resizable and Scalable default to false.
	Resizable *bool
	Scalable  *bool
}

// Config is a fully populated surface configuration.
type Config struct {
	Target      ports.Target
	Width       int
	Height      int
	ScaleFactor float64
	Resizable   bool
	Scalable    bool
}

// Merge fills omitted fields with defaults. It does not touch the target.
func (o Options) Merge() Config {
	cfg := Config{
		Target:      o.Target,
		ScaleFactor: 1,
	}
	if cfg.Target == nil {
		cfg.Target = ggcanvas.New(0, 0)
	}

	cfg.Width = cfg.Target.Width()
	cfg.Height = cfg.Target.Height()

	if o.Width != nil {
		cfg.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Height = *o.Height
	}
	if o.ScaleFactor != nil {
		cfg.ScaleFactor = *o.ScaleFactor
	}
	if o.Resizable != nil {
		cfg.Resizable = *o.Resizable
	}
	if o.Scalable != nil {
		cfg.Scalable = *o.Scalable
	}

	return cfg
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
