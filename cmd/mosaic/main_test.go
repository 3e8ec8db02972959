package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/user/mosaic/pkg/adapters/fonts"
	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/adapters/osfilesystem"
	"github.com/user/mosaic/pkg/adapters/pdfcanvas"
	"github.com/user/mosaic/pkg/orchestrator"
)

const testScript = `
surface:
  width: 40
  height: 30
  scale_factor: 2
ops:
  - op: rect
    x: 0
    y: 0
    width: 40
    height: 30
    style:
      fill: "#336699"
  - op: text
    text: Hi
    x: 4
    y: 20
    size: 12
`

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"mosaic"}, args...))
	return out.String(), err
}

func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(testScript), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRender_PNG(t *testing.T) {
	scriptPath := writeScript(t)
	output := filepath.Join(t.TempDir(), "out.png")

	// flags must come before the script argument in urfave/cli
	out, err := runApp(t, "render", "-Q", "-o", output, scriptPath)
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 ops, 40x30") {
		t.Errorf("unexpected summary %q", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestRender_PDFFromExtension(t *testing.T) {
	scriptPath := writeScript(t)
	output := filepath.Join(t.TempDir(), "out.pdf")

	if out, err := runApp(t, "render", "-Q", "-o", output, scriptPath); err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected PDF output")
	}
}

func TestRender_DebugAndLogFile(t *testing.T) {
	scriptPath := writeScript(t)
	dir := t.TempDir()
	debugDir := filepath.Join(dir, "debug")
	logFile := filepath.Join(dir, "mosaic.log")

	out, err := runApp(t, "render", "-Q",
		"-o", filepath.Join(dir, "out.png"),
		"--debug", "--debug-dir", debugDir,
		"--log-file", logFile,
		"--summary", filepath.Join(dir, "summary.md"),
		scriptPath,
	)
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(debugDir, "script.json")); err != nil {
		t.Errorf("expected script.json: %v", err)
	}
	snapshots, _ := filepath.Glob(filepath.Join(debugDir, "snapshots", "*.png"))
	if len(snapshots) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(snapshots))
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.md"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(summary), "| `rect` | 1 |") {
		t.Errorf("unexpected summary:\n%s", summary)
	}

	logData, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "Output saved to") {
		t.Errorf("log file missing output line:\n%s", logData)
	}
}

func TestRender_Errors(t *testing.T) {
	scriptPath := writeScript(t)
	output := filepath.Join(t.TempDir(), "out.png")

	tests := []struct {
		name string
		args []string
	}{
		{"no script", []string{"render", "-Q", "-o", output}},
		{"missing output flag", []string{"render", "-Q", scriptPath}},
		{"unknown format", []string{"render", "-Q", "-f", "gif", "-o", output, scriptPath}},
		{"unknown backend", []string{"render", "-Q", "-b", "svg", "-o", output, scriptPath}},
		{"missing script file", []string{"render", "-Q", "-o", output, filepath.Join(t.TempDir(), "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	out, err := runApp(t, "measure", "--size", "20", "Hello")
	if err != nil {
		t.Fatalf("measure failed: %v", err)
	}
	if !strings.HasPrefix(out, "width ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestWrap(t *testing.T) {
	out, err := runApp(t, "wrap", "--width", "60", "--size", "16", "one two three four five")
	if err != nil {
		t.Fatalf("wrap failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Errorf("expected several lines, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version in %q", out)
	}
}

func TestTargetFactory(t *testing.T) {
	factory := targetFactory(fonts.New(osfilesystem.New()))

	raster, err := factory(orchestrator.BackendRaster)
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	if _, ok := raster.(*ggcanvas.Target); !ok {
		t.Errorf("expected ggcanvas target, got %T", raster)
	}

	pdf, err := factory(orchestrator.BackendPDF)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if _, ok := pdf.(*pdfcanvas.Target); !ok {
		t.Errorf("expected pdfcanvas target, got %T", pdf)
	}

	if _, err := factory(orchestrator.Backend("svg")); err == nil {
		t.Error("expected error for unknown backend")
	}
}
