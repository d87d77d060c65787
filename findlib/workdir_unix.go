//go:build !windows

package findlib

import "os"

func workingDir() (string, error) {
	return os.Getwd()
}
