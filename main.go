package main

import (
	"devsetup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The devsetup project is an interactive developer workstation bootstrap tool that:
//   - Detects the host platform (macOS or Linux) from host signals, reading the
//     distro release metadata on Linux and probing for the managed-workstation
//     marker command that indicates Docker is blocked by policy
//   - Asks the operator to confirm the detected environment and to choose a
//     container runtime (Docker or Podman) before anything is installed
//   - Installs a fixed developer toolchain (Git, build tools, IDE, container
//     runtime) through the platform package manager (Homebrew on macOS, apt on
//     Linux), checking each tool on PATH first so repeated runs skip work
//   - Can alternatively fetch individual tools straight from GitHub releases or
//     a custom URL, extracting the archive and placing the binary on PATH
//   - Waits for the chosen container runtime daemon to come up before declaring
//     the machine ready, and prints a per-step summary at the end
//
// Error handling strategy:
//   - Fail fast: an unsupported platform, an invalid runtime selection, or any
//     failed external command aborts the whole run with exit code 1 before
//     touching anything further. There is no retry and no rollback; this is a
//     one-shot interactive tool, not a resumable system.
//   - Warnings (such as picking Docker on a managed workstation) never abort;
//     they only annotate the chosen path.
//
// Integration points:
//   - Shells out to the platform package manager and to the runtime CLIs via
//     os/exec; it never implements package management itself
//   - Reads /etc/os-release for Linux distro identification
//   - All interactive input is read line-by-line from stdin
func main() {
	cmd.Execute()
}
