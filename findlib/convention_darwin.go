//go:build darwin

package findlib

var hostConvention = Convention{
	EnvVar:    "DYLD_LIBRARY_PATH",
	Separator: ":",
	Prefix:    "lib",
	Extension: ".dylib",
}
