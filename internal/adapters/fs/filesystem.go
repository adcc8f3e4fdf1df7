// Package fs provides file system adapters for locating, reading, walking and hashing templates.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on top of the operating system.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path names a regular file.
func (f *FileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ResolveCaseInsensitive returns path itself when it exists, otherwise the first sibling
// whose name matches the final element of path ignoring case.
func (f *FileSystem) ResolveCaseInsensitive(path string) (string, bool) {
	if f.Exists(path) {
		return path, true
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.EqualFold(entry.Name(), base) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// ReadFile returns the contents of path.
func (f *FileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Template paths are built from the configured folder
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, "failed to read template"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read template"), "path", path)
	}
	return string(data), nil
}

// ModTime returns the last write time of path in UTC.
func (f *FileSystem) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat template"), "path", path)
	}
	return info.ModTime().UTC(), nil
}
