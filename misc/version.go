// Package misc provides build time program information.
package misc

import "runtime/debug"

// Overwritten during build with ldflags.
var (
	appName = "cssel"
	version = "development"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns source revision recorded in build information.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
