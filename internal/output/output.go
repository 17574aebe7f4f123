// Package output writes rendered documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMode is the permission used for written documents, before umask.
const FileMode = 0o644

// WriteFile replaces the file at path with data. Existing content is
// overwritten; readers never observe a partially written document. When path
// is a symlink, its target is replaced and the link is kept.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	if err := writeFile(resolveTarget(path), data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// resolveTarget follows symlinks at path, including a dangling final link.
func resolveTarget(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}
