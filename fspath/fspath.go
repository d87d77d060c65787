package fspath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether the path exists. Stat failures of any kind,
// including permission errors, count as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsRegularFile reports whether the path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDirectory reports whether the path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileSize returns the size in bytes of the regular file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("not a regular file: %q", path)
	}
	return info.Size(), nil
}

// TempDirectoryPath returns the directory for temporary files.
func TempDirectoryPath() string {
	return os.TempDir()
}

// CurrentPath returns the process working directory.
func CurrentPath() (string, error) {
	return os.Getwd()
}

// CreateDirectories creates the directory at path along with any missing
// parents. Directories that already exist are not an error.
func CreateDirectories(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Remove removes the file or empty directory at path.
func Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes path and, when it names a directory, everything below
// it. A path that does not exist is not an error.
func RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// RemoveExtension strips up to times extensions from the final element of
// path: "archive.tar.gz" becomes "archive.tar" once stripped and "archive"
// twice. Stripping stops when the final element has no extension left; dots
// in parent directories are never touched.
func RemoveExtension(path string, times int) string {
	for i := 0; i < times; i++ {
		ext := filepath.Ext(path)
		if ext == "" {
			break
		}
		path = strings.TrimSuffix(path, ext)
	}
	return path
}
