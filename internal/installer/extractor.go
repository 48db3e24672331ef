package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // .7z archives
	"github.com/xi2/xz"          // .xz compressed tarballs

	"devsetup/internal/logger"
)

// Binary install locations: the system directory first, the user's ~/bin
// as fallback when the system one is not writable. Vars so tests can
// redirect them.
var (
	installBinDir = "/usr/local/bin"
	homeBinDir    = func() string { return filepath.Join(os.Getenv("HOME"), "bin") }
)

// ExtractAndInstall unpacks a downloaded archive into a scratch directory,
// locates the executable named like toolName inside it, and copies it into
// the bin directory. Returns the final installed path.
func ExtractAndInstall(archive, toolName string) (string, error) {
	scratch, err := os.MkdirTemp("", "devsetup-extract-")
	if err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	root, err := ExtractArchive(archive, scratch)
	if err != nil {
		return "", err
	}

	binary, err := findExecutable(root, toolName)
	if err != nil {
		return "", err
	}
	logger.Debug("[DEBUG] Extracted binary %s\n", binary)

	dest := installBinDir
	if err := installBinary(binary, dest); err != nil {
		// Fall back to ~/bin when the system directory is not writable.
		dest = homeBinDir()
		if err := os.MkdirAll(dest, 0755); err != nil {
			return "", fmt.Errorf("creating fallback bin directory: %w", err)
		}
		if err := installBinary(binary, dest); err != nil {
			return "", fmt.Errorf("installing binary to fallback location: %w", err)
		}
	}
	return filepath.Join(dest, filepath.Base(binary)), nil
}

// ExtractArchive unpacks src into dest and returns the extraction root:
// the single top-level entry when the archive has one, dest otherwise.
func ExtractArchive(src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		return extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		return extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		return extractTar(src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// extractTar handles plain and compressed tarballs.
func extractTar(src, dest string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var top string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		top = firstSegment(hdr.Name, top)
		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return "", err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, os.FileMode(hdr.Mode)); err != nil {
				return "", err
			}
		}
	}
	return extractionRoot(dest, top), nil
}

func extractZip(src, dest string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var top string
	for _, f := range r.File {
		top = firstSegment(f.Name, top)
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return "", err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		werr := writeFile(target, rc, f.Mode())
		rc.Close()
		if werr != nil {
			return "", werr
		}
	}
	return extractionRoot(dest, top), nil
}

func extract7z(src, dest string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("opening 7z archive: %w", err)
	}
	defer r.Close()

	var top string
	for _, f := range r.File {
		top = firstSegment(f.Name, top)
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return "", err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		werr := writeFile(target, rc, f.Mode())
		rc.Close()
		if werr != nil {
			return "", werr
		}
	}
	return extractionRoot(dest, top), nil
}

// firstSegment tracks the archive's top-level entry name across members.
func firstSegment(name, current string) string {
	if current != "" {
		return current
	}
	name = filepath.ToSlash(name)
	if i := strings.IndexByte(name, '/'); i > 0 {
		return name[:i]
	}
	return name
}

func extractionRoot(dest, top string) string {
	if top == "" {
		return dest
	}
	return filepath.Join(dest, top)
}

// safeJoin joins an archive member name onto dest, rejecting entries that
// would escape the extraction directory.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) && target != filepath.Clean(dest) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	_, cpErr := io.Copy(out, r)
	closeErr := out.Close()
	if cpErr != nil {
		return cpErr
	}
	return closeErr
}

// findExecutable returns the path of the executable named like toolName
// inside root. A single extracted file is taken as the binary directly.
func findExecutable(root, toolName string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return root, nil
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || found != "" {
			return err
		}
		name := filepath.Base(path)
		if !strings.HasPrefix(name, toolName) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if fi.Mode().IsRegular() && fi.Mode().Perm()&0111 != 0 {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no executable named %s found under %s", toolName, root)
	}
	return found, nil
}

// installBinary copies a binary into dstDir with executable permissions.
func installBinary(src, dstDir string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dst := filepath.Join(dstDir, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	_, cpErr := io.Copy(out, in)
	closeErr := out.Close()
	if cpErr != nil {
		return cpErr
	}
	return closeErr
}
