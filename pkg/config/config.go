// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/orchestrator"
	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/textlayout"
)

// Config represents the full configuration for mosaic.
type Config struct {
	// Surface defaults, overridden by a script's surface section
	Surface SurfaceConfig `yaml:"surface"`

	// Rendering
	Backend string            `yaml:"backend"` // raster or pdf; empty follows the output format
	Fonts   map[string]string `yaml:"fonts"`   // font name -> TrueType/OpenType file
	Text    TextConfig        `yaml:"text"`

	// Output
	Output OutputConfig `yaml:"output"`

	// Logging
	Log LogConfig `yaml:"log"`

	// Debug
	Debug DebugConfig `yaml:"debug"`
}

// SurfaceConfig holds the default surface geometry.
type SurfaceConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ScaleFactor float64 `yaml:"scale_factor"`
	Resizable   bool    `yaml:"resizable"`
	Scalable    bool    `yaml:"scalable"`
	Background  string  `yaml:"background"`
}

// TextConfig holds the text options used when an op names no font.
type TextConfig struct {
	Font       string  `yaml:"font"`
	Size       float64 `yaml:"size"`
	LineHeight float64 `yaml:"line_height"`
}

// OutputConfig selects the output encoding.
type OutputConfig struct {
	Format  string `yaml:"format"` // png, jpeg or pdf
	Quality int    `yaml:"quality"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // rotated log file; empty logs to the console only
}

// DebugConfig controls per-op snapshots.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	text := pipeline.DefaultText()
	surface := pipeline.DefaultSurface()

	return Config{
		Surface: SurfaceConfig{
			Width:       surface.Width,
			Height:      surface.Height,
			ScaleFactor: surface.ScaleFactor,
		},
		Fonts: map[string]string{},
		Text: TextConfig{
			Font:       text.FontName,
			Size:       text.FontSize,
			LineHeight: text.LineHeight,
		},
		Output: OutputConfig{
			Format:  "png",
			Quality: 90,
		},
		Log: LogConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			Dir: "./debug",
		},
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be corrected later.
func (c Config) Validate() error {
	if _, err := ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := ports.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Output.Quality < 0 || c.Output.Quality > 100 {
		return fmt.Errorf("output quality must be between 0 and 100, got %d", c.Output.Quality)
	}
	if c.Surface.Width < 0 || c.Surface.Height < 0 {
		return fmt.Errorf("surface size must not be negative, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if c.Surface.Background != "" {
		if _, err := csscolor.Parse(c.Surface.Background); err != nil {
			return fmt.Errorf("surface background: %w", err)
		}
	}
	return nil
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (ports.Format, error) {
	switch strings.ToLower(s) {
	case "png", "":
		return ports.FormatPNG, nil
	case "jpeg", "jpg":
		return ports.FormatJPEG, nil
	case "pdf":
		return ports.FormatPDF, nil
	default:
		return ports.FormatPNG, fmt.Errorf("unknown output format %q", s)
	}
}

// ParseColor parses a CSS color string. Empty or invalid strings yield
// black.
func ParseColor(s string) color.Color {
	c, err := csscolor.Parse(s)
	if err != nil {
		return color.Black
	}
	return c
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(scriptPath, outputPath string) (orchestrator.Config, error) {
	format, err := ParseFormat(c.Output.Format)
	if err != nil {
		return orchestrator.Config{}, err
	}
	backend, err := orchestrator.ParseBackend(c.Backend, format)
	if err != nil {
		return orchestrator.Config{}, err
	}

	surface := pipeline.SurfaceDefaults{
		Width:       c.Surface.Width,
		Height:      c.Surface.Height,
		ScaleFactor: c.Surface.ScaleFactor,
		Resizable:   c.Surface.Resizable,
		Scalable:    c.Surface.Scalable,
	}
	if c.Surface.Background != "" {
		surface.Background = ParseColor(c.Surface.Background)
	}

	return orchestrator.Config{
		ScriptPath: scriptPath,
		OutputPath: outputPath,
		Backend:    backend,
		Surface:    surface,
		Text: textlayout.Options{
			FontName:   c.Text.Font,
			FontSize:   c.Text.Size,
			LineHeight: c.Text.LineHeight,
		},
		Format:  format,
		Quality: c.Output.Quality,
	}, nil
}
