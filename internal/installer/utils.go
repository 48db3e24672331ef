package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"devsetup/internal/logger"
)

// downloadFile downloads the content at url and writes it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s returned HTTP %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close %s: %v\n", destPath, cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
