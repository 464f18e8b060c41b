package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts file access so the annotator can run against the
// real filesystem or an in-memory fixture. Each class's read, transform,
// and conditional write is a single synchronous unit.
type Provider interface {
	// ReadFile reads the file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file's contents, preserving its mode
	WriteFile(path string, content []byte) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
