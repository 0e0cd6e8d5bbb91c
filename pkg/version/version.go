// Package version reports which build of ingestipy is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at link time, for example:
//
//	go build -ldflags "-X ingestipy/pkg/version.Version=0.3.0 -X ingestipy/pkg/version.Commit=$(git rev-parse --short HEAD)"
//
// Unset values fall back to the build info embedded by the Go toolchain.
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

const unknown = "unknown"

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool // Built from a dirty working tree.
	GoVersion string
	Platform  string
}

// Get merges link-time values with the embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi != nil {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildTime == "" {
		info.BuildTime = unknown
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String renders a single line such as
// "ingestipy 0.3.0 (abc123def456, 2024-04-27T15:04:05Z) go1.23.1 linux/amd64".
func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("ingestipy %s (%s, %s) %s %s", i.Version, commit, i.BuildTime, i.GoVersion, i.Platform)
}
