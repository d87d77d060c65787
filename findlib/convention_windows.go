//go:build windows

package findlib

var hostConvention = Convention{
	EnvVar:           "PATH",
	Separator:        ";",
	Prefix:           "",
	Extension:        ".dll",
	SearchWorkingDir: true,
}
