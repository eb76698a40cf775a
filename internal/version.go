package internal

import "runtime/debug"

// Set with buildflag if built in pipeline and not using go install
var (
	BuildVersion  = ""
	BuildChecksum = ""
)

// Version of the binary, preferring the build flag over the module build info
func Version() string {
	if BuildVersion != "" {
		if BuildChecksum != "" {
			return BuildVersion + ", checksum: " + BuildChecksum
		}
		return BuildVersion
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version + ", go version: " + bi.GoVersion
}
