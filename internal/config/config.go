package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"devsetup/internal/logger"
)

// Load returns the tool catalog for a run. With an empty path the built-in
// default catalog is used, keeping the zero-flag interactive run
// self-contained; otherwise the YAML file at path is parsed.
func Load(path string) (Catalog, error) {
	if path == "" {
		logger.Debug("[DEBUG] No catalog file given, using the built-in defaults\n")
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if len(cat.Tools) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s lists no tools", path)
	}
	logger.Debug("[DEBUG] Loaded catalog %s with %d tools\n", path, len(cat.Tools))
	return cat, nil
}

// Default is the fixed developer toolchain the interactive run installs:
// Git and the IDE. Build tools and the container runtime are dedicated
// steps driven by the environment profile, not catalog entries.
func Default() Catalog {
	return Catalog{
		Tools: []Tool{
			{Name: "git", Check: "git"},
			{Name: "visual-studio-code", Check: "code", Brew: "visual-studio-code", Apt: "code", Cask: true},
		},
	}
}
