package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"devsetup/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

// withMarker stubs the PATH probe so the restricted marker appears present
// or absent regardless of the machine running the tests.
func withMarker(t *testing.T, present bool) {
	t.Helper()
	old := lookPath
	lookPath = func(name string) (string, error) {
		if present && name == restrictedMarker {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPath = old })
}

// withOSRelease points detection at a temp os-release file with the given
// contents, or at a nonexistent path when contents is empty.
func withOSRelease(t *testing.T, contents string) {
	t.Helper()
	old := osReleasePath
	if contents == "" {
		osReleasePath = filepath.Join(t.TempDir(), "missing")
	} else {
		path := filepath.Join(t.TempDir(), "os-release")
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		osReleasePath = path
	}
	t.Cleanup(func() { osReleasePath = old })
}

func TestDetectDarwinSignal(t *testing.T) {
	withMarker(t, false)
	p, err := Detect("darwin23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != MacOS {
		t.Errorf("expected MacOS, got %v", p.Kind)
	}
	if p.Restricted {
		t.Error("macOS must never be flagged restricted")
	}
	if p.Distro != "" || p.DistroVersion != "" {
		t.Errorf("distro fields must stay empty on macOS, got %q/%q", p.Distro, p.DistroVersion)
	}
}

func TestDetectLinuxSignalWithMarker(t *testing.T) {
	withMarker(t, true)
	withOSRelease(t, "NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"22.04\"\n")

	p, err := Detect("linux-gnu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != Linux {
		t.Fatalf("expected Linux, got %v", p.Kind)
	}
	if p.Distro != "ubuntu" || p.DistroVersion != "22.04" {
		t.Errorf("expected ubuntu/22.04, got %q/%q", p.Distro, p.DistroVersion)
	}
	if !p.Restricted {
		t.Error("marker present, profile should be restricted")
	}
}

func TestDetectLinuxWithoutMarker(t *testing.T) {
	withMarker(t, false)
	withOSRelease(t, "ID=debian\nVERSION_ID=\"12\"\n")

	p, err := Detect("linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Restricted {
		t.Error("marker absent, profile must not be restricted")
	}
}

// The restricted flag depends on the marker command alone; swapping the
// distro underneath must not change it.
func TestRestrictedIndependentOfDistro(t *testing.T) {
	withMarker(t, true)
	for _, contents := range []string{
		"ID=ubuntu\nVERSION_ID=\"22.04\"\n",
		"ID=fedora\nVERSION_ID=\"40\"\n",
		"", // unreadable release file
	} {
		withOSRelease(t, contents)
		p, err := Detect("linux-gnu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Restricted {
			t.Errorf("restricted flag lost for os-release %q", contents)
		}
	}
}

func TestDetectUnsupportedSignal(t *testing.T) {
	withMarker(t, false)
	for _, signal := range []string{"win32", "msys", "freebsd13", ""} {
		_, err := Detect(signal)
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("signal %q: expected ErrUnsupportedPlatform, got %v", signal, err)
		}
	}
}

func TestReadOSReleaseMissingFile(t *testing.T) {
	id, version := readOSRelease(filepath.Join(t.TempDir(), "nope"))
	if id != "" || version != "" {
		t.Errorf("missing file should yield empty fields, got %q/%q", id, version)
	}
}

func TestReadOSReleaseQuotingAndCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte("ID=\"Debian\"\nVERSION_ID=12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	id, version := readOSRelease(path)
	if id != "debian" {
		t.Errorf("expected lowercased unquoted id, got %q", id)
	}
	if version != "12" {
		t.Errorf("expected version 12, got %q", version)
	}
}
