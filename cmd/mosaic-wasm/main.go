//go:build js && wasm

// Command mosaic-wasm renders draw scripts onto a browser canvas.
//
// It installs a global "mosaic" object:
//
//	mosaic.addAsset(path, uint8Array)  stores an image for image ops
//	mosaic.render(yamlText)            draws the script, returning an error string or null
package main

import (
	"context"
	"sync"
	"syscall/js"

	"github.com/user/mosaic/pkg/adapters/jscanvas"
	"github.com/user/mosaic/pkg/adapters/logger"
	"github.com/user/mosaic/pkg/adapters/memfs"
	"github.com/user/mosaic/pkg/adapters/nullsink"
	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/platform"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/script"
	"github.com/user/mosaic/pkg/stages/draw"
	"github.com/user/mosaic/pkg/viewport"
)

const canvasID = "mosaic"

var version = "dev"

type app struct {
	mu       sync.Mutex
	target   *jscanvas.Target
	host     *jscanvas.WindowHost
	assets   *memfs.FileSystem
	stage    *draw.Stage
	log      ports.Logger
	platform *platform.Platform
	binding  *jscanvas.Binding
	doc      *script.Document
}

func main() {
	log := logger.NewConsole(ports.LevelInfo)

	target, ok := jscanvas.FromID(canvasID)
	if !ok {
		log.Error("Canvas %s not found", canvasID)
		return
	}

	assets := memfs.New()
	a := &app{
		target: target,
		host:   jscanvas.NewWindowHost(),
		assets: assets,
		stage:  draw.NewStage(assets, nullsink.New(), log),
		log:    log,
	}

	js.Global().Set("mosaic", js.ValueOf(map[string]interface{}{
		"version":  version,
		"render":   js.FuncOf(a.jsRender),
		"addAsset": js.FuncOf(a.jsAddAsset),
	}))

	select {}
}

func (a *app) jsAddAsset(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "addAsset(path, bytes) takes two arguments"
	}
	data := make([]byte, args[1].Get("length").Int())
	js.CopyBytesToGo(data, args[1])
	if err := a.assets.WriteFile(args[0].String(), data); err != nil {
		return err.Error()
	}
	return nil
}

func (a *app) jsRender(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "render(yaml) takes one argument"
	}
	doc, err := script.Parse([]byte(args[0].String()))
	if err != nil {
		a.log.Error("Failed to load script: %s", err)
		return err.Error()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.doc = &doc
	if err := a.draw(); err != nil {
		return err.Error()
	}
	return nil
}

// draw runs the current script sized to the window. The caller holds mu.
func (a *app) draw() error {
	if a.doc == nil {
		return nil
	}
	a.log.Info("Loaded script with %d ops", len(a.doc.Ops))

	surface := pipeline.DefaultSurface()
	surface.Width = a.host.Width()
	surface.Height = a.host.Height()
	surface.ScaleFactor = a.host.ScaleFactor()
	surface.Resizable = true
	surface.Scalable = true

	// the window decides the size
	doc := *a.doc
	doc.Surface.Width, doc.Surface.Height, doc.Surface.ScaleFactor = 0, 0, 0

	result, err := a.stage.Execute(context.Background(), pipeline.DrawInput{
		Script:  doc,
		Target:  a.target,
		Surface: surface,
		Text:    pipeline.DefaultText(),
	})
	if err != nil {
		return err
	}

	if a.binding != nil {
		a.binding.Release()
	}
	vp := viewport.New(a.host, result.Surface, viewport.WithLogger(a.log))
	vp.OnResize.Add(func(viewport.Size) {
		// redraw after fitSurface has resized the canvas, which clears it
		go func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			if err := a.draw(); err != nil {
				a.log.Error("Redraw failed: %s", err)
			}
		}()
	})
	a.binding = jscanvas.Bind(vp, a.host, a.target)

	a.platform = platform.New("browser", a.host.UserAgent(), vp, jscanvas.NewDocumentMeta())
	if bg := a.doc.Surface.Background; bg != "" {
		if c, err := csscolor.Parse(bg); err == nil {
			a.platform.SetThemeColor(c)
		}
	}
	return nil
}
