package ports

import "time"

// FileSystem is the slice of the operating system the resolver needs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path names a regular file.
	Exists(path string) bool
	// ResolveCaseInsensitive finds the file matching path while ignoring the case of its final element.
	ResolveCaseInsensitive(path string) (string, bool)
	// ReadFile returns the contents of path.
	ReadFile(path string) (string, error)
	// ModTime returns the last write time of path.
	ModTime(path string) (time.Time, error)
}
