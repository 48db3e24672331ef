package installer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"devsetup/internal/config"
	"devsetup/internal/logger"
	"devsetup/internal/platform"
)

// githubAPIBase is swappable in tests to point release lookups at a local
// HTTP server.
var githubAPIBase = "https://api.github.com"

// githubRelease represents the subset of a GitHub release JSON response the
// installer needs: the tag and the downloadable assets.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveSuffixes are the asset formats the extractor can unpack.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// installFromGitHub fetches a tool's release metadata, picks the asset
// matching the resolved platform, downloads and extracts it, and installs
// the contained binary. Returns the installed path.
func installFromGitHub(p platform.Profile, tool config.Tool) (string, error) {
	repo := tool.Repo
	if repo == "" {
		repo = tool.Name
	}
	tag := tool.Tag
	if tag == "" {
		tag = "v" + tool.Version
	}

	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", githubAPIBase, repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release metadata from %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching release for %s: %w", tool.Name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release fetch for %s@%s returned HTTP %d", repo, tag, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release JSON for %s: %w", tool.Name, err)
	}
	logger.Debug("[DEBUG] Release %s has %d assets\n", release.TagName, len(release.Assets))

	assetURL := pickAsset(release, assetPatterns(p.Kind))
	if assetURL == "" {
		return "", fmt.Errorf("no asset in %s@%s matches this platform (%v/%s)", repo, release.TagName, p.Kind, runtime.GOARCH)
	}

	archive := filepath.Join(os.TempDir(), path.Base(assetURL))
	logger.Info("[INFO] Downloading %s\n", path.Base(assetURL))
	if err := downloadFile(assetURL, archive); err != nil {
		return "", err
	}
	return ExtractAndInstall(archive, tool.CheckCommand())
}

// installFromURL downloads an archive (or macOS .pkg) from a direct URL and
// installs it.
func installFromURL(p platform.Profile, tool config.Tool) (string, error) {
	if tool.URL == "" {
		return "", fmt.Errorf("tool %s has source url but no url field", tool.Name)
	}
	target := filepath.Join(os.TempDir(), path.Base(tool.URL))
	if err := downloadFile(tool.URL, target); err != nil {
		return "", err
	}

	// macOS installer packages go through the system installer instead of
	// the archive extractor.
	if p.Kind == platform.MacOS && strings.HasSuffix(tool.URL, ".pkg") {
		logger.Info("[INFO] Installing %s via the macOS installer...\n", tool.Name)
		output, err := execCommand("sudo", "installer", "-pkg", target, "-target", "/").CombinedOutput()
		if err != nil {
			return "", fmt.Errorf("installer failed for %s: %v\n%s", tool.Name, err, output)
		}
		return "/Applications", nil
	}

	return ExtractAndInstall(target, tool.CheckCommand())
}

// pickAsset returns the download URL of the first asset matching any of the
// platform patterns and carrying an extractable archive suffix. Patterns
// are tried in order, so more specific ones win.
func pickAsset(release githubRelease, patterns []string) string {
	for _, pattern := range patterns {
		for _, asset := range release.Assets {
			name := strings.ToLower(asset.Name)
			if !strings.Contains(name, pattern) {
				continue
			}
			for _, suffix := range archiveSuffixes {
				if strings.HasSuffix(name, suffix) {
					return asset.BrowserDownloadURL
				}
			}
		}
	}
	return ""
}

// assetPatterns lists the filename fragments identifying release assets
// built for the resolved platform, most specific first.
func assetPatterns(kind platform.Kind) []string {
	arch := runtime.GOARCH
	switch kind {
	case platform.MacOS:
		if arch == "arm64" {
			return []string{"darwin_arm64", "darwin-arm64", "aarch64-apple-darwin", "macos_arm64", "macos"}
		}
		return []string{"darwin_amd64", "darwin-amd64", "x86_64-apple-darwin", "macos_amd64", "macos"}
	case platform.Linux:
		if arch == "arm64" {
			return []string{"linux_arm64", "linux-arm64", "aarch64-unknown-linux", "linux_aarch64"}
		}
		return []string{"linux_amd64", "linux-amd64", "x86_64-unknown-linux", "linux_x86_64", "linux64"}
	default:
		return nil
	}
}
