// Package platform resolves the host environment into an immutable profile
// that drives every subsequent setup step: which operating system family is
// running, which Linux distro (if any), whether the host is a managed
// workstation that blocks Docker by policy, and which container runtime the
// operator chose.
package platform

import "errors"

// Kind identifies the host operating system family.
type Kind int

const (
	KindUnknown Kind = iota
	MacOS
	Linux
)

// String returns the human-readable name of the platform kind.
func (k Kind) String() string {
	switch k {
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "unknown"
	}
}

// ContainerRuntime is the chosen backend for containerized workloads.
type ContainerRuntime int

const (
	RuntimeNone ContainerRuntime = iota
	Docker
	Podman
)

// String returns the runtime's CLI command name, which doubles as its
// display name ("docker", "podman").
func (r ContainerRuntime) String() string {
	switch r {
	case Docker:
		return "docker"
	case Podman:
		return "podman"
	default:
		return "none"
	}
}

// Profile is the environment record produced by detection and runtime
// selection. It is constructed exactly once at startup, fully populated
// before the first install step runs, and read-only afterwards. Downstream
// steps receive it by value and never consult the host again.
type Profile struct {
	Kind          Kind
	Distro        string // Linux only, e.g. "ubuntu"; empty on macOS
	DistroVersion string // Linux only, e.g. "22.04"; empty on macOS
	Restricted    bool   // managed workstation, Docker blocked by policy

	Runtime        ContainerRuntime // set once by SelectContainerRuntime
	RuntimeWarning bool             // Docker chosen on a restricted host
}

var (
	// ErrUnsupportedPlatform is returned when the host signals neither
	// macOS nor Linux. Detection failure is fatal: no install step may run
	// without a resolved profile.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidSelection is returned when the operator's runtime menu
	// input falls outside the enumerated choices. This is fatal, not
	// recoverable: the whole run terminates.
	ErrInvalidSelection = errors.New("invalid selection")
)
