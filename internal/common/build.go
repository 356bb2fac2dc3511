package common

import (
	"fmt"
	"runtime/debug"
)

// Version and GitCommit are injected through ldflags by release builds.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// GetModuleBuildInfo resolves the build's version and commit, preferring
// ldflags-injected values over the VCS metadata embedded in the binary.
func GetModuleBuildInfo() (string, string, bool) {
	if Version != "dev" {
		return Version, GitCommit, true
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}

	var gitCommit string
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			gitCommit = setting.Value
			break
		}
	}

	return info.Main.Version, gitCommit, true
}

// GetVersion renders the one-line version string shown to users, with the
// commit shortened to eight characters.
func GetVersion() string {
	version, gitCommit, ok := GetModuleBuildInfo()
	if !ok {
		return "unknown"
	}

	if gitCommit == "unknown" || len(gitCommit) == 0 {
		return version
	}
	if len(gitCommit) > 8 {
		gitCommit = gitCommit[:8]
	}
	return fmt.Sprintf("%s (git: %s)", version, gitCommit)
}
