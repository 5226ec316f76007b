package id3tag

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3tag library.
const Version = "0.3.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Modified  bool
}

// GetVersionInfo returns version information from the VCS stamp the Go
// toolchain embeds in binaries. Fields it cannot determine are "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: "unknown",
		BuildTime: "unknown",
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
