package version

import "runtime/debug"

var (
	// Version is the semantic version, set with -ldflags at build time.
	Version = "0.1.0"

	// Revision is the VCS revision the binary was built from.
	Revision = revision()
)

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}

	return "unknown"
}
