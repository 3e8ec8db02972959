//go:build js && wasm

package jscanvas

import (
	"syscall/js"

	"github.com/user/mosaic/pkg/platform"
	"github.com/user/mosaic/pkg/viewport"
)

// WindowHost reports the browser window geometry.
type WindowHost struct {
	window js.Value
}

// NewWindowHost returns a host for the global window.
func NewWindowHost() *WindowHost {
	return &WindowHost{window: js.Global()}
}

// Width returns window.innerWidth.
func (h *WindowHost) Width() int { return h.window.Get("innerWidth").Int() }

// Height returns window.innerHeight.
func (h *WindowHost) Height() int { return h.window.Get("innerHeight").Int() }

// ScaleFactor returns window.devicePixelRatio, or 1 when unset.
func (h *WindowHost) ScaleFactor() float64 {
	ratio := h.window.Get("devicePixelRatio")
	if ratio.Type() != js.TypeNumber || ratio.Float() <= 0 {
		return 1
	}
	return ratio.Float()
}

// UserAgent returns navigator.userAgent.
func (h *WindowHost) UserAgent() string {
	return h.window.Get("navigator").Get("userAgent").String()
}

// Binding holds the DOM listeners installed by Bind.
type Binding struct {
	release []func()
}

// Bind forwards window resize events and canvas pointer events to vp.
// Release removes the listeners.
func Bind(vp *viewport.Viewport, host *WindowHost, canvas *Target) *Binding {
	b := &Binding{}

	b.listen(host.window, "resize", func(js.Value) {
		vp.Resize(host.Width(), host.Height())
	})

	pointer := func(list *viewport.EventHandlerList[viewport.Point]) func(js.Value) {
		return func(ev js.Value) {
			list.Invoke(viewport.Point{
				X: ev.Get("offsetX").Float(),
				Y: ev.Get("offsetY").Float(),
			})
		}
	}
	b.listen(canvas.canvas, "click", pointer(vp.OnClick))
	b.listen(canvas.canvas, "pointerdown", pointer(vp.OnPointerDown))
	b.listen(canvas.canvas, "pointermove", pointer(vp.OnPointerMove))
	b.listen(canvas.canvas, "pointerup", pointer(vp.OnPointerUp))

	return b
}

func (b *Binding) listen(target js.Value, event string, fn func(js.Value)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, cb)
	b.release = append(b.release, func() {
		target.Call("removeEventListener", event, cb)
		cb.Release()
	})
}

// Release removes every listener.
func (b *Binding) Release() {
	for _, fn := range b.release {
		fn()
	}
	b.release = nil
}

// DocumentMeta reads and writes <meta> elements of the document head.
type DocumentMeta struct {
	doc js.Value
}

// NewDocumentMeta returns a meta store for the global document.
func NewDocumentMeta() *DocumentMeta {
	return &DocumentMeta{doc: js.Global().Get("document")}
}

func (m *DocumentMeta) find(name string) js.Value {
	return m.doc.Call("querySelector", `meta[name="`+name+`"]`)
}

// Meta returns the content of the named meta element.
func (m *DocumentMeta) Meta(name string) (string, bool) {
	el := m.find(name)
	if el.IsNull() {
		return "", false
	}
	return el.Call("getAttribute", "content").String(), true
}

// SetMeta creates or updates the named meta element.
func (m *DocumentMeta) SetMeta(name, content string) {
	el := m.find(name)
	if el.IsNull() {
		el = m.doc.Call("createElement", "meta")
		el.Call("setAttribute", "name", name)
		m.doc.Get("head").Call("appendChild", el)
	}
	el.Call("setAttribute", "content", content)
}

var (
	_ viewport.Host      = (*WindowHost)(nil)
	_ platform.MetaStore = (*DocumentMeta)(nil)
)
