package config

import (
	"os"
	"path/filepath"
	"testing"

	"devsetup/internal/logger"
	"devsetup/internal/platform"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Tools) == 0 {
		t.Fatal("default catalog must not be empty")
	}
	if cat.Tools[0].Name != "git" {
		t.Errorf("git should be the first tool, got %s", cat.Tools[0].Name)
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	contents := `
tools:
  - name: ripgrep
    check: rg
    apt: ripgrep
  - name: jq
    source: github
    repo: jqlang/jq
    tag: jq-1.7
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(cat.Tools))
	}
	if cat.Tools[0].CheckCommand() != "rg" {
		t.Errorf("expected check command rg, got %s", cat.Tools[0].CheckCommand())
	}
	if cat.Tools[1].Repo != "jqlang/jq" || cat.Tools[1].Source != "github" {
		t.Errorf("github source fields lost: %+v", cat.Tools[1])
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("tools: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a catalog without tools")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}

func TestPackageForFallsBackToName(t *testing.T) {
	tool := Tool{Name: "git"}
	if got := tool.PackageFor(platform.MacOS); got != "git" {
		t.Errorf("expected fallback to tool name, got %s", got)
	}

	tool = Tool{Name: "visual-studio-code", Apt: "code"}
	if got := tool.PackageFor(platform.Linux); got != "code" {
		t.Errorf("expected apt override, got %s", got)
	}
	if got := tool.PackageFor(platform.MacOS); got != "visual-studio-code" {
		t.Errorf("expected name fallback on macOS, got %s", got)
	}
}
