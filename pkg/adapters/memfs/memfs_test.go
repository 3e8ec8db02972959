package memfs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	m := New()

	if err := m.WriteFile("assets/logo.png", []byte("png")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := m.ReadFile("./assets//logo.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("expected %q, got %q", "png", data)
	}

	// callers cannot alias stored bytes
	data[0] = 'x'
	again, _ := m.ReadFile("assets/logo.png")
	if string(again) != "png" {
		t.Errorf("stored data changed to %q", again)
	}
}

func TestFileSystem_ReadMissing(t *testing.T) {
	_, err := New().ReadFile("nope.png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	m := New()
	m.WriteFile("a/b/c.txt", nil)

	tests := map[string]bool{
		"a":         true,
		"a/b":       true,
		"a/b/c.txt": true,
		"a/c":       false,
	}
	for p, want := range tests {
		if got, _ := m.Exists(p); got != want {
			t.Errorf("Exists(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestFileSystem_Conflicts(t *testing.T) {
	m := New()
	m.MkdirAll("dir")
	if err := m.WriteFile("dir", []byte("x")); err == nil {
		t.Error("expected error writing over a directory")
	}

	m.WriteFile("file", []byte("x"))
	if err := m.MkdirAll("file"); err == nil {
		t.Error("expected error creating a directory over a file")
	}
}
