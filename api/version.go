package api

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// Version information, overridden with -ldflags at release time
var (
	Version       = "0.1.0"
	VersionCommit = ""
	BuildDate     = "unknown"
)

func init() {
	if i, ok := debug.ReadBuildInfo(); ok {
		if vcsv, ok := lo.Find(i.Settings, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		}); ok && VersionCommit == "" {
			VersionCommit = vcsv.Value
		}
	}
}
