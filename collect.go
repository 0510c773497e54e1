package pelagia

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectMarkdown walks root recursively and returns the absolute paths of
// all markdown files, sorted case-insensitively by slash path so output is
// reproducible across runs and platforms.
func CollectMarkdown(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, root)
	case err != nil:
		// Permission and other stat failures are not "folder missing";
		// surface them as-is so callers map them correctly.
		return nil, fmt.Errorf("checking folder %s: %w", root, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, root)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownPath(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w under: %s", ErrNoMarkdownFiles, absRoot)
	}

	sort.Slice(files, func(i, j int) bool {
		return sortKey(files[i]) < sortKey(files[j])
	})
	return files, nil
}

// RotateToStart rotates files so the entry matching start is first. Rotation
// keeps the cyclic order of the remaining entries, so the result is a
// permutation of the input with only the start position changed.
func RotateToStart(files []string, start string) ([]string, error) {
	target := filepath.Clean(start)
	for i, f := range files {
		if filepath.Clean(f) == target {
			rotated := make([]string, 0, len(files))
			rotated = append(rotated, files[i:]...)
			rotated = append(rotated, files[:i]...)
			return rotated, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStartFileNotFound, start)
}

// isMarkdownPath reports whether path has a markdown extension.
func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// sortKey normalizes a path for deterministic ordering.
func sortKey(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}
