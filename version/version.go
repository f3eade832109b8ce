package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application in window titles
// and in the debugger banner
const ApplicationName = "TestCHIP8"

// number is set by the linker for numbered release builds
//
//	go build -ldflags "-X github.com/jetsetilly/testchip8/version.number=v0.1.0"
var number string

// revision is the VCS revision, suffixed with "+dirty" if the working tree had
// been modified at build time
var revision string

// version is one of: the release number; "unreleased" if built from a VCS
// checkout without a release number; "local" if there is no VCS information
// at all (as is the case with "go run .")
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string suitable for a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

// Banner returns a single line describing the application and build
func Banner() string {
	ver, rev, _ := Version()
	return fmt.Sprintf("%s %s [%s]", ApplicationName, ver, rev)
}

func init() {
	var vcs bool

	if info, ok := debug.ReadBuildInfo(); ok {
		var modified bool
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		if revision != "" && modified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if revision == "" {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
