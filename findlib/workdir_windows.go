//go:build windows

package findlib

import "golang.org/x/sys/windows"

// workingDir asks the Win32 API directly, matching how loaders resolve the
// "current directory" entry.
func workingDir() (string, error) {
	return windows.Getwd()
}
