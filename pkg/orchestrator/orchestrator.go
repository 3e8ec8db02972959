// Package orchestrator coordinates the render stages: load a script, draw
// it, export the target and write the output.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
	"github.com/user/mosaic/pkg/textlayout"
)

// Backend selects the kind of target a script is drawn on.
type Backend string

const (
	BackendRaster Backend = "raster"
	BackendPDF    Backend = "pdf"
)

// ParseBackend parses a backend name. The empty string selects the
// backend that matches format.
func ParseBackend(s string, format ports.Format) (Backend, error) {
	switch Backend(s) {
	case BackendRaster, BackendPDF:
		return Backend(s), nil
	case "":
		if format == ports.FormatPDF {
			return BackendPDF, nil
		}
		return BackendRaster, nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

// TargetFactory creates an empty target for a backend.
type TargetFactory func(backend Backend) (ports.Target, error)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	ScriptPath string
	OutputPath string

	// Rendering
	Backend     Backend
	Surface     pipeline.SurfaceDefaults
	Text        textlayout.Options
	ScaleFactor float64 // overrides the script when positive

	// Output encoding
	Format  ports.Format
	Quality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Backend: BackendRaster,
		Surface: pipeline.DefaultSurface(),
		Text:    pipeline.DefaultText(),
		Format:  ports.FormatPNG,
		Quality: 90,
	}
}

// Orchestrator coordinates the execution of the render stages.
type Orchestrator struct {
	drawStage   pipeline.Stage[pipeline.DrawInput, pipeline.DrawResult]
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	newTarget   TargetFactory
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	drawStage pipeline.Stage[pipeline.DrawInput, pipeline.DrawResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	newTarget TargetFactory,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		drawStage:   drawStage,
		exportStage: exportStage,
		newTarget:   newTarget,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Run renders config.ScriptPath into config.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := time.Now()
	o.logger.Info("Rendering %s", config.ScriptPath)

	// 1. Load script
	doc, err := o.loadScript(config.ScriptPath)
	if err != nil {
		o.logger.Error("Failed to load script: %s", err)
		return RunResult{}, err
	}
	o.logger.Info("Loaded script with %d ops", len(doc.Ops))

	if config.ScaleFactor > 0 {
		doc.Surface.ScaleFactor = config.ScaleFactor
	}

	if o.sink.Enabled() {
		if data, err := doc.JSON(); err == nil {
			o.sink.SaveScriptJSON(data)
		}
	}

	// 2. Draw
	target, err := o.newTarget(config.Backend)
	if err != nil {
		return RunResult{}, fmt.Errorf("create %s target: %w", config.Backend, err)
	}
	drawn, err := o.drawStage.Execute(ctx, pipeline.DrawInput{
		Script:   doc,
		Target:   target,
		Surface:  config.Surface,
		Text:     config.Text,
		AssetDir: filepath.Dir(config.ScriptPath),
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("draw stage: %w", err)
	}

	// 3. Export
	exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{
		Target:  target,
		Format:  config.Format,
		Quality: config.Quality,
	})
	if err != nil {
		o.logger.Error("Failed to export: %s", err)
		return RunResult{}, fmt.Errorf("export stage: %w", err)
	}

	// 4. Write output
	if err := o.fs.WriteFile(config.OutputPath, exported.Data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info("Output saved to %s", config.OutputPath)

	elapsed := time.Since(start)
	o.logger.Info("Render completed in %d ms", elapsed.Milliseconds())

	result := RunResult{
		OpCount:     drawn.OpCount,
		OpKinds:     countKinds(doc.Ops),
		Backend:     config.Backend,
		Width:       target.Width(),
		Height:      target.Height(),
		ScaleFactor: drawn.Surface.ScaleFactor(),
		Format:      exported.Format,
		FileSize:    int64(len(exported.Data)),
		Duration:    elapsed,
	}
	return result, nil
}

func (o *Orchestrator) loadScript(path string) (script.Document, error) {
	data, err := o.fs.ReadFile(path)
	if err != nil {
		return script.Document{}, fmt.Errorf("read script: %w", err)
	}
	doc, err := script.Parse(data)
	if err != nil {
		return script.Document{}, fmt.Errorf("parse script %s: %w", path, err)
	}
	return doc, nil
}

func countKinds(ops []script.Op) map[string]int {
	kinds := make(map[string]int)
	for _, op := range ops {
		kinds[op.Op]++
	}
	return kinds
}

// RunResult summarizes a render.
type RunResult struct {
	OpCount     int
	OpKinds     map[string]int // op name -> count
	Backend     Backend
	Width       int // device pixels (points for PDF)
	Height      int
	ScaleFactor float64
	Format      ports.Format
	FileSize    int64
	Duration    time.Duration
}
