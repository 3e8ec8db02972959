package filesink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/mosaic/pkg/mocks"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	if !New(testBaseDir, mocks.NewFileSystem()).Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveScriptJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"ops":[]}`)
	if err := sink.SaveScriptJSON(data); err != nil {
		t.Fatalf("SaveScriptJSON failed: %v", err)
	}

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "script.json"))
	if !ok || string(saved) != string(data) {
		t.Errorf("expected %q, got %q (found=%v)", data, saved, ok)
	}
}

func TestSink_SaveSnapshot(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{255, 0, 0, 255})
	if err := sink.SaveSnapshot(3, "text block", img); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	path := filepath.Join(testBaseDir, "snapshots", "0003-text_block.png")
	saved, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected file at %s", path)
	}

	decoded, err := png.Decode(bytes.NewReader(saved))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if r, _, _, _ := decoded.At(2, 2).RGBA(); r>>8 != 255 {
		t.Errorf("expected red pixel, got %v", decoded.At(2, 2))
	}
}

func TestSink_MultipleSnapshots(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	for i := 0; i < 5; i++ {
		if err := sink.SaveSnapshot(i, "rect", img); err != nil {
			t.Fatalf("SaveSnapshot %d failed: %v", i, err)
		}
	}
	if n := len(fs.Paths()); n != 5 {
		t.Errorf("expected 5 files, got %d", n)
	}
}
