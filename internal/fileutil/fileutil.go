// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// DirPermissions is the mode for directories created by EnsureDir.
const DirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// EnsureDir creates dir and any missing parents. It is a no-op when dir
// already exists as a directory, or is empty or ".".
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "docs" -> false (name)
//   - "./docs.yaml" -> true (relative path)
//   - "/etc/md2html/docs.yaml" -> true (absolute)
//   - "C:\config\docs.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
