package fonts

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/user/mosaic/pkg/mocks"
)

func TestRegistry_ResolveBuiltin(t *testing.T) {
	r := New(nil)

	face, err := r.Resolve("sans-serif", 16)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if h := face.Metrics().Height.Ceil(); h < 14 || h > 24 {
		t.Errorf("unexpected line height %d for 16px face", h)
	}
}

func TestRegistry_ResolveCachesFaces(t *testing.T) {
	r := New(nil)

	a, _ := r.Resolve("Go Mono", 12)
	b, _ := r.Resolve("go mono", 12)
	if a != b {
		t.Error("expected cached face for case-insensitive name")
	}
}

func TestRegistry_UnknownFallsBack(t *testing.T) {
	r := New(nil)

	face, err := r.Resolve("Comic Sans", 12)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := r.Resolve(DefaultFallback, 12)
	if face != want {
		t.Error("expected fallback face")
	}
}

func TestRegistry_BasicFace(t *testing.T) {
	r := New(nil)

	face, err := r.Resolve("basic", 40)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if face != font.Face(basicfont.Face7x13) {
		t.Error("expected 7x13 face")
	}

	r.SetFallback(Basic)
	face, _ = r.Resolve("missing", 12)
	if face != font.Face(basicfont.Face7x13) {
		t.Error("expected basic fallback")
	}
}

func TestRegistry_InvalidSize(t *testing.T) {
	r := New(nil)
	if _, err := r.Resolve("Go", 0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestRegistry_LoadFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("/fonts/brand.ttf", gomono.TTF)
	r := New(fs)

	if err := r.LoadFile("Brand", "/fonts/brand.ttf"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !r.Has("brand") {
		t.Error("expected brand to be registered")
	}
	if data, ok := r.Data("Brand"); !ok || len(data) != len(gomono.TTF) {
		t.Error("expected raw font data")
	}

	if err := r.LoadFile("Missing", "/fonts/missing.ttf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := New(nil)
	if err := r.Register("Broken", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
	if r.Has("Broken") {
		t.Error("broken font was registered")
	}
}

func TestRegistry_Names(t *testing.T) {
	names := New(nil).Names()
	if len(names) == 0 || names[0] != Basic {
		t.Errorf("unexpected names %v", names)
	}
}
