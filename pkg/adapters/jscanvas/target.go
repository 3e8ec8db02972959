//go:build js && wasm

// Package jscanvas draws onto an HTML canvas element from WebAssembly.
package jscanvas

import (
	"image"
	"syscall/js"

	"github.com/user/mosaic/pkg/ports"
)

// Target wraps an HTML canvas element.
type Target struct {
	canvas js.Value
	ctx    *Context
}

// New wraps canvas, which must be an HTMLCanvasElement.
func New(canvas js.Value) *Target {
	t := &Target{canvas: canvas}
	t.ctx = &Context{ctx: canvas.Call("getContext", "2d"), doc: js.Global().Get("document")}
	return t
}

// FromID finds the canvas element with the given id. It reports false when
// there is no such element.
func FromID(id string) (*Target, bool) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return New(el), true
}

// Width returns the canvas width in device pixels.
func (t *Target) Width() int { return t.canvas.Get("width").Int() }

// Height returns the canvas height in device pixels.
func (t *Target) Height() int { return t.canvas.Get("height").Int() }

// SetWidth resizes the canvas. The browser clears it and resets its
// drawing state.
func (t *Target) SetWidth(width int) { t.canvas.Set("width", max(width, 0)) }

// SetHeight resizes the canvas.
func (t *Target) SetHeight(height int) { t.canvas.Set("height", max(height, 0)) }

// Context2D returns the canvas context.
func (t *Target) Context2D() ports.Context2D { return t.ctx }

// SetPixelated sets the CSS image-rendering of the element.
func (t *Target) SetPixelated(pixelated bool) {
	mode := "auto"
	if pixelated {
		mode = "pixelated"
	}
	t.canvas.Get("style").Set("imageRendering", mode)
}

// Image reads the canvas pixels back.
func (t *Target) Image() image.Image {
	w, h := t.Width(), t.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	data := t.ctx.ctx.Call("getImageData", 0, 0, w, h).Get("data")
	js.CopyBytesToGo(img.Pix, data)
	return img
}

var (
	_ ports.Target      = (*Target)(nil)
	_ ports.PixelHinter = (*Target)(nil)
	_ ports.ImageTarget = (*Target)(nil)
)
