package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements Provider for the OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces the file's contents. An existing file keeps its
// mode; a new file is created with 0644.
func (p *OSFileSystem) WriteFile(path string, content []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, content, mode)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}
