package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/mosaic/pkg/orchestrator"
	"github.com/user/mosaic/pkg/ports"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mosaic.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Surface.ScaleFactor != 1 || cfg.Output.Format != "png" || cfg.Text.Size <= 0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
surface:
  width: 300
  background: navy
backend: pdf
fonts:
  Brand: fonts/brand.ttf
output:
  format: pdf
log:
  level: debug
  file: mosaic.log
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Surface.Width != 300 || cfg.Surface.Height != 480 {
		t.Errorf("expected width override with default height, got %dx%d", cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.Fonts["Brand"] != "fonts/brand.ttf" || cfg.Log.File != "mosaic.log" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Output.Quality != 90 {
		t.Errorf("expected default quality, got %d", cfg.Output.Quality)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "surface: [",
		"bad format":     "output: {format: gif}",
		"bad level":      "log: {level: loud}",
		"bad quality":    "output: {quality: 101}",
		"bad background": "surface: {background: sparkly}",
		"negative size":  "surface: {width: -2}",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFromFile(writeConfig(t, content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]ports.Format{
		"png": ports.FormatPNG, "": ports.FormatPNG,
		"JPG": ports.FormatJPEG, "jpeg": ports.FormatJPEG,
		"pdf": ports.FormatPDF,
	}
	for in, want := range tests {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c := ParseColor("#ff0000"); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("unexpected color %v", c)
	}
	if c := ParseColor("nonsense"); c != color.Black {
		t.Errorf("expected black fallback, got %v", c)
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Output.Format = "pdf"
	cfg.Surface.Background = "white"

	oc, err := cfg.ToOrchestratorConfig("in.yaml", "out.pdf")
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}
	if oc.Backend != orchestrator.BackendPDF || oc.Format != ports.FormatPDF {
		t.Errorf("expected PDF backend and format, got %s/%s", oc.Backend, oc.Format)
	}
	if oc.Surface.Background == nil || oc.Text.FontName != "sans-serif" {
		t.Errorf("unexpected orchestrator config %+v", oc)
	}
	if oc.ScriptPath != "in.yaml" || oc.OutputPath != "out.pdf" {
		t.Errorf("unexpected paths %q %q", oc.ScriptPath, oc.OutputPath)
	}

	cfg.Backend = "svg"
	if _, err := cfg.ToOrchestratorConfig("a", "b"); err == nil {
		t.Error("expected error for unknown backend")
	}
}
