// Package memfs provides an in-memory file system for hosts without one,
// such as a browser.
package memfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/user/mosaic/pkg/ports"
)

// FileSystem keeps files in memory, keyed by cleaned slash-separated path.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// New creates an empty FileSystem.
func New() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true, "/": true},
	}
}

func clean(p string) string {
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}

// ReadFile returns a copy of the file contents.
func (m *FileSystem) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[clean(p)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", p, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data, creating parent directories.
func (m *FileSystem) WriteFile(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(p)
	if m.dirs[key] {
		return fmt.Errorf("write %s: is a directory", p)
	}
	m.mkdirAll(path.Dir(key))
	m.files[key] = append([]byte(nil), data...)
	return nil
}

// MkdirAll records a directory and its parents.
func (m *FileSystem) MkdirAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(p)
	if _, ok := m.files[key]; ok {
		return fmt.Errorf("mkdir %s: is a file", p)
	}
	m.mkdirAll(key)
	return nil
}

func (m *FileSystem) mkdirAll(dir string) {
	for {
		m.dirs[dir] = true
		parent := path.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// Exists reports whether a file or directory exists.
func (m *FileSystem) Exists(p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := clean(p)
	_, isFile := m.files[key]
	return isFile || m.dirs[key], nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
