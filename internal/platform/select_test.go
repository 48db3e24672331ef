package platform

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSelectUnrestrictedMenu(t *testing.T) {
	cases := []struct {
		input string
		want  ContainerRuntime
	}{
		{"1\n", Docker},
		{"2\n", Podman},
		{"  2  \n", Podman}, // surrounding whitespace is tolerated
	}
	for _, tc := range cases {
		var out bytes.Buffer
		rt, warn, err := SelectContainerRuntime(false, strings.NewReader(tc.input), &out)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.input, err)
		}
		if rt != tc.want {
			t.Errorf("input %q: expected %v, got %v", tc.input, tc.want, rt)
		}
		if warn {
			t.Errorf("input %q: unrestricted selection must not warn", tc.input)
		}
		if !strings.Contains(out.String(), "1) Docker") || !strings.Contains(out.String(), "2) Podman") {
			t.Errorf("input %q: menu should enumerate both runtimes, got %q", tc.input, out.String())
		}
	}
}

func TestSelectUnrestrictedRejectsOutOfRange(t *testing.T) {
	for _, input := range []string{"3\n", "0\n", "docker\n", "\n", "yes\n"} {
		var out bytes.Buffer
		rt, _, err := SelectContainerRuntime(false, strings.NewReader(input), &out)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("input %q: expected ErrInvalidSelection, got %v", input, err)
		}
		if rt != RuntimeNone {
			t.Errorf("input %q: no runtime may be selected on invalid input, got %v", input, rt)
		}
	}
}

func TestSelectRestrictedAcceptsRecommendation(t *testing.T) {
	for _, input := range []string{"\n", "y\n", "Y\n", "yes\n"} {
		var out bytes.Buffer
		rt, warn, err := SelectContainerRuntime(true, strings.NewReader(input), &out)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}
		if rt != Podman {
			t.Errorf("input %q: expected Podman, got %v", input, rt)
		}
		if warn {
			t.Errorf("input %q: accepting the recommendation must not warn", input)
		}
	}
}

func TestSelectRestrictedDeclineFallsBackToDocker(t *testing.T) {
	var out bytes.Buffer
	rt, warn, err := SelectContainerRuntime(true, strings.NewReader("n\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt != Docker {
		t.Errorf("expected Docker after declining, got %v", rt)
	}
	if !warn {
		t.Error("declining the recommendation must set the warning flag")
	}
}

func TestSelectFailsOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	_, _, err := SelectContainerRuntime(false, strings.NewReader(""), &out)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection on EOF, got %v", err)
	}
}

func TestRuntimeAndKindStrings(t *testing.T) {
	if Docker.String() != "docker" || Podman.String() != "podman" {
		t.Error("runtime names must match their CLI command names")
	}
	if MacOS.String() != "macOS" || Linux.String() != "Linux" {
		t.Errorf("unexpected kind names: %q %q", MacOS.String(), Linux.String())
	}
}
