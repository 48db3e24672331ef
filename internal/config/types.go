package config

import "devsetup/internal/platform"

// Tool represents one entry in the setup catalog.
// - Name: logical name used in log lines and the run summary.
// - Check: command probed on PATH before installing; a hit skips the tool.
// - Source: how to install — "pkg" (platform package manager, the default),
//   "github" (release asset download), or "url" (direct archive download).
// - Cask: macOS only, install as a Homebrew cask (GUI application).
// - Brew/Apt: per-manager package names; Name is used when empty.
// - Repo/Tag/Version/URL: resolve the download for the github/url sources.
type Tool struct {
	Name    string `yaml:"name"`
	Check   string `yaml:"check"`
	Source  string `yaml:"source"`
	Cask    bool   `yaml:"cask"`
	Brew    string `yaml:"brew"`
	Apt     string `yaml:"apt"`
	Version string `yaml:"version"`
	Repo    string `yaml:"repo"`
	Tag     string `yaml:"tag"`
	URL     string `yaml:"url"`
}

// PackageFor returns the package name to hand the platform's manager,
// falling back to the tool name when no per-manager override is set.
func (t Tool) PackageFor(kind platform.Kind) string {
	switch kind {
	case platform.MacOS:
		if t.Brew != "" {
			return t.Brew
		}
	case platform.Linux:
		if t.Apt != "" {
			return t.Apt
		}
	}
	return t.Name
}

// CheckCommand returns the command probed for idempotence, defaulting to
// the tool name.
func (t Tool) CheckCommand() string {
	if t.Check != "" {
		return t.Check
	}
	return t.Name
}

// Catalog is the full set of tools a setup run installs, in order.
type Catalog struct {
	Tools []Tool `yaml:"tools"`
}
