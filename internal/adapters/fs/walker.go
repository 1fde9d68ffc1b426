// Package fs provides file system adapters for walking and hashing pod sources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// DefaultIgnores lists file and directory names never part of a pod's sources.
var DefaultIgnores = []string{".DS_Store", "xcuserdata", "*.xcuserstate"}

// Walker provides file walking functionality.
type Walker struct {
	ignores []string
}

// NewWalker creates a new Walker skipping the given name patterns in addition
// to version control directories.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields all regular files below root in lexical order, paired with
// any error met while walking. Iteration stops after the first error.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(path, err)
				return filepath.SkipAll
			}

			if path != root && w.skip(d) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skip reports whether the entry matches a version control directory or an ignore pattern.
func (w *Walker) skip(d fs.DirEntry) bool {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj" || name == ".svn") {
		return true
	}

	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
