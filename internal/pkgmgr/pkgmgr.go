// Package pkgmgr wraps the platform package managers the setup delegates
// installs to. The setup tool itself never manages packages; it only asks
// the host's manager whether a package is present and to install it, and
// treats any install failure as fatal for the run.
package pkgmgr

import (
	"fmt"
	"os/exec"

	"devsetup/internal/platform"
)

// Manager is the external package-manager capability the setup delegates to.
// Implementations shell out to the real tool; errors carry the command
// output so the operator sees what the manager printed before the run died.
type Manager interface {
	// Name identifies the manager in log lines ("brew", "apt").
	Name() string
	// IsAvailable reports whether the manager's CLI is on PATH.
	IsAvailable() bool
	// IsInstalled reports whether the named package is already installed
	// according to the manager's own records.
	IsInstalled(pkg string) bool
	// Install installs the named package. A non-nil error is fatal for the
	// whole setup run; no retry, no rollback.
	Install(pkg string) error
	// InstallCask installs a GUI/desktop application. Managers without a
	// cask notion install it like any other package.
	InstallCask(pkg string) error
}

// Swappable in tests.
var (
	execCommand = exec.Command
	lookPath    = exec.LookPath
)

// Detect returns the package manager for the resolved platform kind:
// Homebrew on macOS, apt on Linux. Every non-restricted Linux host gets apt;
// there is deliberately no per-distro dispatch beyond that single manager.
func Detect(kind platform.Kind) (Manager, error) {
	switch kind {
	case platform.MacOS:
		m := &Brew{}
		if !m.IsAvailable() {
			return nil, fmt.Errorf("homebrew not found on PATH; install it from https://brew.sh first")
		}
		return m, nil
	case platform.Linux:
		m := &Apt{}
		if !m.IsAvailable() {
			return nil, fmt.Errorf("apt-get not found on PATH; this Linux host is not supported")
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: no package manager for %v", platform.ErrUnsupportedPlatform, kind)
	}
}

// run executes a manager command and folds its combined output into the
// error on failure, so failed installs surface the manager's own message.
func run(name string, args ...string) error {
	cmd := execCommand(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %v failed: %v\n%s", name, args, err, output)
	}
	return nil
}
