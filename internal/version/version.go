package version

import "runtime/debug"

var (
	// Version is the module version recorded in build info, or "devel" for
	// local builds.
	Version = "devel"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			Revision = setting.Value
		}
	}
}

// String renders the version and revision on one line.
func String() string {
	return Version + " (" + Revision + ")"
}
