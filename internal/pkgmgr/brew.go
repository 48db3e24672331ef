package pkgmgr

import "devsetup/internal/logger"

// Brew drives Homebrew, the single package manager used on macOS.
type Brew struct{}

func (b *Brew) Name() string { return "brew" }

func (b *Brew) IsAvailable() bool {
	_, err := lookPath("brew")
	return err == nil
}

// IsInstalled asks brew itself rather than probing PATH, so casks and
// formulae that install no CLI entry point are still recognized.
func (b *Brew) IsInstalled(pkg string) bool {
	if err := run("brew", "list", pkg); err == nil {
		return true
	}
	return false
}

func (b *Brew) Install(pkg string) error {
	logger.Debug("[DEBUG] brew install %s\n", pkg)
	return run("brew", "install", pkg)
}

// InstallCask installs GUI applications (IDE, Docker Desktop) via the cask
// tap instead of as formulae.
func (b *Brew) InstallCask(pkg string) error {
	logger.Debug("[DEBUG] brew install --cask %s\n", pkg)
	return run("brew", "install", "--cask", pkg)
}
