// Package vault handles file access for note transforms: validated reads,
// write-after-success rewrites, and recursive markdown enumeration.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReadNote reads a markdown file and verifies it is valid UTF-8. Transforms
// are textual, so a file that does not decode is rejected up front instead
// of being corrupted on write-back.
func ReadNote(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: not valid UTF-8", path)
	}
	return string(data), nil
}

// WriteNote writes the transformed content back. Callers invoke this only
// after the whole transform has succeeded in memory, so a failed transform
// never leaves a partially rewritten file behind.
func WriteNote(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Walk returns every .md file under root, recursively, skipping paths that
// match any of the exclude glob patterns (matched against the path relative
// to root and against the base name).
func Walk(root string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if excluded(rel, filepath.Base(path), exclude) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

func excluded(rel, base string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
