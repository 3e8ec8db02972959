package ports

// FileSystem is the file access mosaic needs: reading scripts, fonts and
// images, and writing exported surfaces, debug snapshots and summaries.
// Paths are passed through as given; implementations decide whether they
// are OS paths or keys in memory.
type FileSystem interface {
	// ReadFile returns the whole file. Missing files yield an error
	// matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file, creating parent directories.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// Exists reports whether path names a file or directory.
	Exists(path string) (bool, error)
}
