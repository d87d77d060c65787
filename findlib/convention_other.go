//go:build !windows && !darwin

package findlib

var hostConvention = Convention{
	EnvVar:    "LD_LIBRARY_PATH",
	Separator: ":",
	Prefix:    "lib",
	Extension: ".so",
}
