// Package fileutil writes command output files safely.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the mode for assembled definitions, which may describe
// private APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the mode for generated Go source read by build tools.
const ReadableByAll os.FileMode = 0o644

// SanitizeOutputPath cleans path, makes it absolute and rejects it when it
// names a symlink. Paths that do not exist yet are accepted.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}
	return abs, nil
}

// WriteFile sanitizes path and writes data to it with mode. It returns the
// absolute path written.
func WriteFile(path string, data []byte, mode os.FileMode) (string, error) {
	abs, err := SanitizeOutputPath(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, data, mode); err != nil {
		return "", fmt.Errorf("fileutil: failed to write %s: %w", abs, err)
	}
	return abs, nil
}
