// Package installer runs the sequential setup steps for a finalized
// environment profile: build tools, the tool catalog, and the chosen
// container runtime. Execution is strictly ordered and fail-fast; the first
// failing step aborts the run with its error.
package installer

import (
	"fmt"
	"os/exec"

	"devsetup/internal/config"
	"devsetup/internal/logger"
	"devsetup/internal/pkgmgr"
	"devsetup/internal/platform"
	"devsetup/internal/report"
)

// Swappable in tests.
var (
	execCommand = exec.Command
	lookPath    = exec.LookPath
)

// Run executes the full setup sequence against the resolved profile. The
// profile is complete and read-only at this point; no step consults the
// host environment for decisions already made.
func Run(p platform.Profile, cat config.Catalog, rep *report.Report) error {
	mgr, err := pkgmgr.Detect(p.Kind)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Using %s as the package manager\n", mgr.Name())

	logger.Step("==> Build tools\n")
	if err := installBuildTools(p, mgr, rep); err != nil {
		return err
	}

	for _, tool := range cat.Tools {
		logger.Step("==> %s\n", tool.Name)
		if err := installTool(p, mgr, tool, rep); err != nil {
			return err
		}
	}

	logger.Step("==> Container runtime\n")
	return installContainerRuntime(p, mgr, rep)
}

// installBuildTools makes sure a compiler toolchain is present: the Xcode
// command line tools on macOS, build-essential on Linux.
func installBuildTools(p platform.Profile, mgr pkgmgr.Manager, rep *report.Report) error {
	switch p.Kind {
	case platform.MacOS:
		// `xcode-select -p` exits non-zero until the CLT are installed.
		if err := execCommand("xcode-select", "-p").Run(); err == nil {
			logger.Info("[INFO] Xcode command line tools already installed. Skipping.\n")
			rep.Add("xcode-clt", report.Skipped, "already installed")
			return nil
		}
		logger.Info("[INFO] Installing Xcode command line tools (a system dialog may appear)...\n")
		if output, err := execCommand("xcode-select", "--install").CombinedOutput(); err != nil {
			rep.Add("xcode-clt", report.Failed, err.Error())
			return fmt.Errorf("xcode-select --install failed: %v\n%s", err, output)
		}
		rep.Add("xcode-clt", report.Installed, "")
		return nil

	case platform.Linux:
		if mgr.IsInstalled("build-essential") {
			logger.Info("[INFO] build-essential already installed. Skipping.\n")
			rep.Add("build-essential", report.Skipped, "already installed")
			return nil
		}
		if err := mgr.Install("build-essential"); err != nil {
			rep.Add("build-essential", report.Failed, err.Error())
			return err
		}
		rep.Add("build-essential", report.Installed, "")
		return nil

	default:
		return fmt.Errorf("%w: %v", platform.ErrUnsupportedPlatform, p.Kind)
	}
}

// installTool installs one catalog entry, probing its check command on PATH
// first so repeated runs skip tools that are already present.
func installTool(p platform.Profile, mgr pkgmgr.Manager, tool config.Tool, rep *report.Report) error {
	if path, err := lookPath(tool.CheckCommand()); err == nil {
		logger.Info("[INFO] %s already installed at %s. Skipping.\n", tool.Name, path)
		rep.Add(tool.Name, report.Skipped, "already on PATH")
		return nil
	}

	switch tool.Source {
	case "", "pkg":
		pkg := tool.PackageFor(p.Kind)
		logger.Info("[INFO] Installing %s via %s...\n", tool.Name, mgr.Name())
		var err error
		if tool.Cask {
			err = mgr.InstallCask(pkg)
		} else {
			err = mgr.Install(pkg)
		}
		if err != nil {
			rep.Add(tool.Name, report.Failed, err.Error())
			return err
		}
		rep.Add(tool.Name, report.Installed, "via "+mgr.Name())
		return nil

	case "github":
		logger.Info("[INFO] Installing %s from GitHub releases...\n", tool.Name)
		path, err := installFromGitHub(p, tool)
		if err != nil {
			rep.Add(tool.Name, report.Failed, err.Error())
			return err
		}
		rep.Add(tool.Name, report.Installed, path)
		return nil

	case "url":
		logger.Info("[INFO] Installing %s from %s...\n", tool.Name, tool.URL)
		path, err := installFromURL(p, tool)
		if err != nil {
			rep.Add(tool.Name, report.Failed, err.Error())
			return err
		}
		rep.Add(tool.Name, report.Installed, path)
		return nil

	default:
		err := fmt.Errorf("unknown source %q for tool %s", tool.Source, tool.Name)
		rep.Add(tool.Name, report.Failed, err.Error())
		return err
	}
}
