// Package fonts resolves font names to faces.
//
// The Go font family is built in. Additional TrueType or OpenType fonts
// can be registered from bytes or loaded through a FileSystem.
package fonts

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/mosaic/pkg/ports"
)

// Basic names the fixed 7x13 bitmap face. It ignores the requested size.
const Basic = "basic"

// DefaultFallback is used for names that are not registered.
const DefaultFallback = "sans-serif"

type faceKey struct {
	name string
	size float64
}

// Registry maps font names to parsed fonts and caches sized faces.
// Names are case-insensitive.
type Registry struct {
	mu       sync.Mutex
	fs       ports.FileSystem
	fonts    map[string]*opentype.Font
	data     map[string][]byte
	faces    map[faceKey]font.Face
	fallback string
}

// New creates a registry with the Go fonts registered under their own
// names and the generic sans-serif, serif and monospace families.
func New(fs ports.FileSystem) *Registry {
	r := &Registry{
		fs:       fs,
		fonts:    make(map[string]*opentype.Font),
		data:     make(map[string][]byte),
		faces:    make(map[faceKey]font.Face),
		fallback: DefaultFallback,
	}

	builtins := []struct {
		names []string
		ttf   []byte
	}{
		{[]string{"Go", "Go Regular", "sans-serif", "serif", "system-ui"}, goregular.TTF},
		{[]string{"Go Bold"}, gobold.TTF},
		{[]string{"Go Italic"}, goitalic.TTF},
		{[]string{"Go Mono", "monospace"}, gomono.TTF},
	}
	for _, b := range builtins {
		for _, name := range b.names {
			// Built-in fonts are known to parse.
			_ = r.Register(name, b.ttf)
		}
	}

	return r
}

// SetFallback changes the font used for unknown names.
func (r *Registry) SetFallback(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = name
}

// Register parses a TrueType or OpenType font and stores it under name,
// replacing any previous font of that name.
func (r *Registry) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}

	key := normalize(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[key] = f
	r.data[key] = data
	for k := range r.faces {
		if k.name == key {
			delete(r.faces, k)
		}
	}
	return nil
}

// LoadFile reads a font file and registers it under name.
func (r *Registry) LoadFile(name, path string) error {
	if r.fs == nil {
		return fmt.Errorf("load font %q: no file system", name)
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load font %q: %w", name, err)
	}
	return r.Register(name, data)
}

// Resolve returns a face for name at size pixels. Unknown names resolve
// to the fallback font.
func (r *Registry) Resolve(name string, size float64) (font.Face, error) {
	key := normalize(name)
	if key == Basic {
		return basicfont.Face7x13, nil
	}
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fonts[key]; !ok {
		key = normalize(r.fallback)
		if key == Basic {
			return basicfont.Face7x13, nil
		}
	}
	f, ok := r.fonts[key]
	if !ok {
		return nil, fmt.Errorf("font %q not registered and fallback %q missing", name, r.fallback)
	}

	fk := faceKey{name: key, size: size}
	if face, ok := r.faces[fk]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %q at %v: %w", name, size, err)
	}
	r.faces[fk] = face
	return face, nil
}

// Data returns the raw font file registered under name.
func (r *Registry) Data(name string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.data[normalize(name)]
	return data, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	key := normalize(name)
	if key == Basic {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.fonts[key]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.fonts)+1)
	names = append(names, Basic)
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(name), `"'`))
}

var _ ports.FontResolver = (*Registry)(nil)
