package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out.png")

	if err := fs.WriteFile(path, []byte("pixels")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("expected %q, got %q", "pixels", data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "debug", "snapshots", "0001-rect.png")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if ok, err := fs.Exists(path); err != nil || !ok {
		t.Errorf("expected file to exist, got %v, %v", ok, err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory, got %v", err)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	if ok, err := fs.Exists(dir); err != nil || !ok {
		t.Errorf("expected directory to exist, got %v, %v", ok, err)
	}
	if ok, err := fs.Exists(filepath.Join(dir, "missing.ttf")); err != nil || ok {
		t.Errorf("expected missing file, got %v, %v", ok, err)
	}
}

func TestFileSystem_ReadMissing(t *testing.T) {
	if _, err := New().ReadFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}
