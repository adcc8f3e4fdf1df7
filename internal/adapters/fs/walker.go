package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker enumerates template files below a folder.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkTemplates yields the paths of files under root that end in extension, relative to root.
// Hidden directories and names matching an ignore pattern are skipped.
func (w *Walker) WalkTemplates(root, extension string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipAction := w.shouldSkip(path, root, d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), extension) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil //nolint:nilerr // Paths outside root are ignored
			}
			if !yield(rel) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip returns filepath.SkipDir for ignored directories.
func (w *Walker) shouldSkip(path, root string, d fs.DirEntry, ignores []string) error {
	if !d.IsDir() || path == root {
		return nil
	}

	name := d.Name()
	if strings.HasPrefix(name, ".") {
		return filepath.SkipDir
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return filepath.SkipDir
		}
	}
	return nil
}
