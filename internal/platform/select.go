package platform

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SelectContainerRuntime asks the operator which container runtime to use
// and returns the choice. It reads exactly one line from in and writes the
// menu to out.
//
// On a restricted host the recommendation defaults to Podman: a yes/no
// prompt accepts the recommendation on Enter/yes, while declining selects
// Docker and sets the warning flag (Docker may not work there, but the
// choice stays with the operator).
//
// On an unrestricted host an enumerated menu {1 Docker, 2 Podman} is shown;
// any input outside that set fails with ErrInvalidSelection, which is fatal
// for the whole run.
func SelectContainerRuntime(restricted bool, in io.Reader, out io.Writer) (ContainerRuntime, bool, error) {
	reader := bufio.NewReader(in)

	if restricted {
		fmt.Fprintln(out, "This looks like a managed workstation where Docker is blocked by policy.")
		fmt.Fprint(out, "Use the recommended runtime Podman instead? [Y/n]: ")
		answer, err := readLine(reader)
		if err != nil {
			return RuntimeNone, false, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		if strings.HasPrefix(strings.ToLower(answer), "n") {
			// Operator insists on Docker. Honor it, but flag the choice.
			return Docker, true, nil
		}
		return Podman, false, nil
	}

	fmt.Fprintln(out, "Which container runtime should be installed?")
	fmt.Fprintln(out, "  1) Docker")
	fmt.Fprintln(out, "  2) Podman")
	fmt.Fprint(out, "Select [1-2]: ")
	answer, err := readLine(reader)
	if err != nil {
		return RuntimeNone, false, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	switch answer {
	case "1":
		return Docker, false, nil
	case "2":
		return Podman, false, nil
	default:
		return RuntimeNone, false, fmt.Errorf("%w: %q is not one of the offered options", ErrInvalidSelection, answer)
	}
}

// readLine reads a single trimmed line of operator input. EOF before any
// input counts as a failed selection.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
