package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"devsetup/internal/logger"
)

// restrictedMarker is the command whose presence on PATH identifies a
// managed corporate workstation. Those machines ship this credential helper
// and disallow Docker by policy, so Podman is the recommended runtime there.
// The marker is probed by existence only; the distro fields never influence
// the restricted flag.
var restrictedMarker = "gcert"

// osReleasePath is the release metadata file consulted on Linux hosts.
var osReleasePath = "/etc/os-release"

// lookPath is swappable in tests so PATH probing can be simulated.
var lookPath = exec.LookPath

// Detect resolves the host signal string (e.g. runtime.GOOS, or a shell
// OSTYPE value such as "darwin23" or "linux-gnu") into a Profile. The
// runtime fields are left unset; SelectContainerRuntime fills them in.
//
// Exactly one of the two supported kinds is returned, or
// ErrUnsupportedPlatform — never both a profile and an error.
func Detect(hostSignal string) (Profile, error) {
	switch {
	case strings.Contains(hostSignal, "darwin"):
		logger.Debug("[DEBUG] Host signal %q resolved to macOS\n", hostSignal)
		return Profile{Kind: MacOS}, nil

	case strings.Contains(hostSignal, "linux"):
		p := Profile{Kind: Linux}
		p.Distro, p.DistroVersion = readOSRelease(osReleasePath)
		if _, err := lookPath(restrictedMarker); err == nil {
			p.Restricted = true
		}
		logger.Debug("[DEBUG] Host signal %q resolved to Linux (distro=%s version=%s restricted=%v)\n",
			hostSignal, p.Distro, p.DistroVersion, p.Restricted)
		return p, nil

	default:
		return Profile{}, fmt.Errorf("%w: host signal %q", ErrUnsupportedPlatform, hostSignal)
	}
}

// readOSRelease parses the ID and VERSION_ID keys out of an os-release
// style key-value file. Both fields are optional: a missing or unreadable
// file yields empty strings, since distro identity is informational and
// never gates an install path.
func readOSRelease(path string) (id, version string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("[DEBUG] Could not read %s: %v\n", path, err)
		return "", ""
	}
	for _, line := range strings.Split(string(raw), "\n") {
		switch {
		case strings.HasPrefix(line, "ID="):
			id = strings.ToLower(strings.Trim(strings.TrimPrefix(line, "ID="), `"`))
		case strings.HasPrefix(line, "VERSION_ID="):
			version = strings.Trim(strings.TrimPrefix(line, "VERSION_ID="), `"`)
		}
	}
	return id, version
}
