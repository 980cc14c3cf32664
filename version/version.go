package version

import (
	"os"
	"runtime/debug"
	"strings"
	"time"
)

// Set with -ldflags -X.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	BuildDate time.Time `json:"-"`
	GoVersion string    `json:"go_version"`
	Runtime   string    `json:"runtime,omitempty"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// GetVersionInfo returns the build information of the running binary.
// Runtime is the Lambda execution environment, empty outside Lambda.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Runtime:   os.Getenv("AWS_EXECUTION_ENV"),
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(s.Value)
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			case "vcs.time":
				if info.BuildTime == "" {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildDate = t
						info.BuildTime = s.Value
					}
				}
			}
		}
	}
	return info
}

// GetShortVersion returns "<version>[-<commit>][-dirty]".
func GetShortVersion() string {
	info := GetVersionInfo()
	v := info.Version
	if info.GitCommit != "" {
		v += "-" + info.GitCommit
	}
	if info.IsDirty {
		v += "-dirty"
	}
	return v
}

// Fields returns the build information as log fields.
func (i *Info) Fields() map[string]interface{} {
	f := map[string]interface{}{
		"version":    i.Version,
		"go_version": i.GoVersion,
	}
	if i.GitCommit != "" {
		f["git_commit"] = i.GitCommit
	}
	if i.BuildTime != "" {
		f["build_time"] = i.BuildTime
	}
	if i.Runtime != "" {
		f["runtime"] = i.Runtime
	}
	return f
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
