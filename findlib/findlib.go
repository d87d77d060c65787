package findlib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no search path entry contains the requested
// library. It is the only failure Find returns; probe-level I/O errors are
// treated as non-matches.
var ErrNotFound = errors.New("shared library not found")

// Convention describes how one operating system names shared libraries and
// where its dynamic linker looks for them. The zero value is not useful;
// obtain values from Host or ConventionFor, or construct one for a custom
// layout such as a mounted foreign sysroot.
type Convention struct {
	// EnvVar names the environment variable holding the linker search path
	// list, for example "LD_LIBRARY_PATH".
	EnvVar string

	// Separator delimits entries in EnvVar's value.
	Separator string

	// Prefix and Extension surround a bare library name to form the
	// conventional filename: "lib" + "foo" + ".so".
	Prefix    string
	Extension string

	// SearchWorkingDir probes the process working directory before any
	// EnvVar entry. Windows deployments commonly colocate executables and
	// their libraries without a populated PATH.
	SearchWorkingDir bool
}

// Host returns the convention of the platform this binary was built for.
// The choice is fixed at compile time; a single build targets exactly one
// convention.
func Host() Convention {
	return hostConvention
}

// ConventionFor returns the shared-library convention used by a GOOS value.
// Supported values are "windows", "darwin" and "linux"; anything else is an
// error.
func ConventionFor(goos string) (Convention, error) {
	switch goos {
	case "windows":
		return Convention{
			EnvVar:           "PATH",
			Separator:        ";",
			Prefix:           "",
			Extension:        ".dll",
			SearchWorkingDir: true,
		}, nil
	case "darwin":
		return Convention{
			EnvVar:    "DYLD_LIBRARY_PATH",
			Separator: ":",
			Prefix:    "lib",
			Extension: ".dylib",
		}, nil
	case "linux":
		return Convention{
			EnvVar:    "LD_LIBRARY_PATH",
			Separator: ":",
			Prefix:    "lib",
			Extension: ".so",
		}, nil
	}

	return Convention{}, fmt.Errorf("unsupported platform for shared library lookup: GOOS=%s", goos)
}

// Filename returns the conventional filename for a bare library name, for
// example "foo" -> "libfoo.so". The name is used as given; an empty name
// yields the bare prefix and extension.
func (c Convention) Filename(name string) string {
	return c.Prefix + name + c.Extension
}

// SearchPath returns the directories Find probes, in probe order: the
// working directory when the convention asks for it, then the entries of
// EnvVar split on Separator. An unset or empty variable contributes no
// entries. Empty entries produced by the split are kept as given; joining
// one with a filename probes relative to the working directory.
func (c Convention) SearchPath() []string {
	var dirs []string
	if value := os.Getenv(c.EnvVar); value != "" {
		dirs = strings.Split(value, c.Separator)
	}

	if c.SearchWorkingDir {
		if wd, err := workingDir(); err == nil {
			dirs = append([]string{wd}, dirs...)
		}
	}

	return dirs
}

// Find resolves a bare library name against the convention's search path
// and returns the path under the first entry holding a regular file with
// the conventional filename. Later matches are never considered. The
// environment and filesystem are read fresh on every call; nothing is
// cached.
//
// When no entry matches, Find returns an error satisfying
// errors.Is(err, ErrNotFound). No further diagnostic detail is available:
// unreadable entries and stat failures count as non-matches.
func (c Convention) Find(name string) (string, error) {
	filename := c.Filename(name)
	for _, dir := range c.SearchPath() {
		path := filepath.Join(dir, filename)
		if isRegularFile(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s: %w", filename, ErrNotFound)
}

// Find resolves a bare library name using the host platform convention.
func Find(name string) (string, error) {
	return Host().Find(name)
}

// Validate checks that an explicitly supplied path points at a usable
// shared library file and returns its absolute form. It is meant for paths
// taken from configuration or override variables rather than produced by
// Find, and unlike Find it reports why a path was rejected.
func Validate(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("library path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat shared library %q: %w", absPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("library path points to a directory: %q", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("shared library is empty: %q", absPath)
	}

	return absPath, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
