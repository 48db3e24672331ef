package pkgmgr

import "devsetup/internal/logger"

// Apt drives apt-get on Linux. All supported Linux hosts, managed or not,
// use this one manager; distro identity never changes the dispatch.
type Apt struct {
	updated bool // package index refreshed once per run
}

func (a *Apt) Name() string { return "apt" }

func (a *Apt) IsAvailable() bool {
	_, err := lookPath("apt-get")
	return err == nil
}

// IsInstalled consults dpkg's database, which also covers packages that
// ship no command on PATH.
func (a *Apt) IsInstalled(pkg string) bool {
	if err := run("dpkg", "-s", pkg); err == nil {
		return true
	}
	return false
}

func (a *Apt) Install(pkg string) error {
	// Refresh the package index before the first install of the run so a
	// stale index does not fail resolvable installs.
	if !a.updated {
		logger.Debug("[DEBUG] apt-get update (first install of this run)\n")
		if err := run("sudo", "apt-get", "update"); err != nil {
			return err
		}
		a.updated = true
	}
	logger.Debug("[DEBUG] apt-get install -y %s\n", pkg)
	return run("sudo", "apt-get", "install", "-y", pkg)
}

// InstallCask has no apt equivalent; desktop packages install like any
// other package.
func (a *Apt) InstallCask(pkg string) error {
	return a.Install(pkg)
}
