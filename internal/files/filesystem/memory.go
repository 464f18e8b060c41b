package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile holds one in-memory file
type memoryFile struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing. It records
// every write so tests can assert that unchanged content produces zero
// writes.
type MemoryFileSystem struct {
	files  map[string]*memoryFile // map of absolute path -> file
	root   string                 // root directory path
	writes map[string]int         // map of absolute path -> write count
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = filepath.ToSlash(root)
	root = path.Clean(root)

	return &MemoryFileSystem{
		files:  make(map[string]*memoryFile),
		root:   root,
		writes: make(map[string]int),
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
}

// WriteCount returns how many times the given path has been written.
func (mfs *MemoryFileSystem) WriteCount(filePath string) int {
	return mfs.writes[mfs.abs(filePath)]
}

// abs resolves a path against the virtual root using forward slashes.
func (mfs *MemoryFileSystem) abs(filePath string) string {
	filePath = filepath.ToSlash(filePath)
	if !strings.HasPrefix(filePath, "/") && !path.IsAbs(filePath) {
		filePath = path.Join(mfs.root, filePath)
	}
	return path.Clean(filePath)
}

// ReadFile implements Provider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.abs(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.content, nil
}

// WriteFile implements Provider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, content []byte) error {
	absPath := mfs.abs(filePath)
	mfs.writes[absPath]++

	existing, exists := mfs.files[absPath]
	mode := fs.FileMode(0644)
	if exists {
		mode = existing.info.mode
	}

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: append([]byte(nil), content...),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    mode,
			modTime: time.Now(),
			isDir:   false,
		},
	}
	return nil
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.abs(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}
