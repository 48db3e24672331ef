package installer

import (
	"fmt"
	"time"

	"devsetup/internal/logger"
	"devsetup/internal/pkgmgr"
	"devsetup/internal/platform"
	"devsetup/internal/report"
)

// daemonPollInterval is the fixed delay between readiness probes.
var daemonPollInterval = 2 * time.Second

// installContainerRuntime installs the runtime the operator chose during
// environment resolution, then blocks until its daemon answers.
func installContainerRuntime(p platform.Profile, mgr pkgmgr.Manager, rep *report.Report) error {
	if p.Runtime == platform.RuntimeNone {
		return fmt.Errorf("no container runtime selected")
	}
	name := p.Runtime.String()

	if p.RuntimeWarning {
		logger.Warn("[WARN] Installing %s on a managed workstation. It may not function correctly here.\n", name)
	}

	if _, err := lookPath(name); err == nil {
		logger.Info("[INFO] %s already installed. Skipping.\n", name)
		rep.Add(name, report.Skipped, "already on PATH")
	} else {
		var ierr error
		if p.Kind == platform.MacOS && p.Runtime == platform.Docker {
			// Docker on macOS means Docker Desktop, which is a cask.
			ierr = mgr.InstallCask("docker")
		} else {
			ierr = mgr.Install(runtimePackage(p))
		}
		if ierr != nil {
			rep.Add(name, report.Failed, ierr.Error())
			return ierr
		}
		rep.Add(name, report.Installed, "via "+mgr.Name())
	}

	waitForDaemon(p.Runtime)
	return nil
}

// runtimePackage maps the chosen runtime to the platform's package name.
func runtimePackage(p platform.Profile) string {
	switch p.Runtime {
	case platform.Docker:
		if p.Kind == platform.Linux {
			return "docker.io"
		}
		return "docker"
	case platform.Podman:
		return "podman"
	default:
		return ""
	}
}

// waitForDaemon polls `<runtime> info` until it succeeds. The wait is
// deliberately unbounded with a fixed delay: Docker Desktop needs a manual
// first start, and the only escape hatch is the operator starting the
// daemon or interrupting the process.
func waitForDaemon(rt platform.ContainerRuntime) {
	for {
		if err := execCommand(rt.String(), "info").Run(); err == nil {
			logger.Info("[INFO] %s is ready.\n", rt)
			return
		}
		logger.Info("[INFO] Waiting for %s to become ready... start the daemon if it is not running.\n", rt)
		time.Sleep(daemonPollInterval)
	}
}
