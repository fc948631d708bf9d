package version

import "runtime/debug"

// version is set at build time with -ldflags "-X github.com/indaco/brewstamp/internal/version.version=..."
var version = ""

// readBuildInfo is replaceable in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linker-provided version, the module version from
// build info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
