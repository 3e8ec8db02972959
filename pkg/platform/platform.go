// Package platform describes the host a surface runs on.
package platform

import (
	"image/color"
	"sync"

	"github.com/user/mosaic/pkg/csscolor"
	"github.com/user/mosaic/pkg/viewport"
)

// ThemeColorMeta is the document meta name holding the theme color.
const ThemeColorMeta = "theme-color"

// MetaStore reads and writes document metadata by name.
type MetaStore interface {
	Meta(name string) (string, bool)
	SetMeta(name, content string)
}

// Platform holds host information and the viewport of the current window.
type Platform struct {
	Name      string
	UserAgent string
	Viewport  *viewport.Viewport

	meta MetaStore
}

// New creates a platform description backed by meta.
func New(name, userAgent string, vp *viewport.Viewport, meta MetaStore) *Platform {
	if meta == nil {
		meta = NewMemoryMeta()
	}
	return &Platform{Name: name, UserAgent: userAgent, Viewport: vp, meta: meta}
}

// ThemeColor returns the page theme color. It reports false when the
// color is missing or cannot be parsed.
func (p *Platform) ThemeColor() (color.RGBA, bool) {
	content, ok := p.meta.Meta(ThemeColorMeta)
	if !ok {
		return color.RGBA{}, false
	}
	c, err := csscolor.Parse(content)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

// SetThemeColor stores c as #rrggbb, creating the meta entry if needed.
func (p *Platform) SetThemeColor(c color.Color) {
	p.meta.SetMeta(ThemeColorMeta, csscolor.Hex(c))
}

// MemoryMeta is an in-memory MetaStore.
type MemoryMeta struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryMeta creates an empty store.
func NewMemoryMeta() *MemoryMeta {
	return &MemoryMeta{entries: make(map[string]string)}
}

// Meta returns the content stored under name.
func (m *MemoryMeta) Meta(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[name]
	return v, ok
}

// SetMeta stores content under name.
func (m *MemoryMeta) SetMeta(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[name] = content
}
