// Package fs provides filesystem helpers for locating Markdown documents.
package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// MarkdownFiles walks root and returns the paths of all Markdown files
// (*.md, *.markdown), sorted by WalkDir's lexical order. Hidden directories
// are skipped.
func MarkdownFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
