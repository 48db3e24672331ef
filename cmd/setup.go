package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	goruntime "runtime"
	"strings"

	"github.com/spf13/cobra"

	"devsetup/internal/config"
	"devsetup/internal/installer"
	"devsetup/internal/logger"
	"devsetup/internal/platform"
	"devsetup/internal/report"
)

// configPath optionally points at a YAML tool catalog overriding the
// built-in defaults. The normal interactive run needs no flags at all.
var configPath string

// setupCmd runs the full bootstrap: resolve the environment, let the
// operator pick a container runtime, then install the toolchain. Any fatal
// condition (unsupported platform, invalid selection, failed command)
// terminates with exit code 1 before further steps run.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Detect the host environment and install the developer toolchain",
	Run: func(cmd *cobra.Command, args []string) {
		profile := resolveEnvironment(os.Stdin, os.Stdout)

		cat, err := config.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		rep := report.New()
		if err := installer.Run(profile, cat, rep); err != nil {
			logger.Error("[ERROR] Setup failed: %v\n", err)
			rep.Print()
			os.Exit(1)
		}
		rep.Print()
		logger.Info("[INFO] Setup complete. Your machine is ready.\n")
	},
}

// resolveEnvironment builds the immutable environment profile: platform
// detection, operator confirmation, and the one-time container runtime
// selection. Every failure in here is fatal; nothing has been installed yet.
func resolveEnvironment(in io.Reader, out io.Writer) platform.Profile {
	p, err := platform.Detect(goruntime.GOOS)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}

	// One buffered reader for all operator input, so the confirmation read
	// cannot swallow the runtime selection line.
	reader := bufio.NewReader(in)

	describeProfile(out, p)
	if !confirm(reader, out) {
		logger.Warn("[WARN] Aborted by operator before any changes were made.\n")
		os.Exit(1)
	}

	rt, warn, err := platform.SelectContainerRuntime(p.Restricted, reader, out)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
	p.Runtime = rt
	p.RuntimeWarning = warn
	if warn {
		logger.Warn("[WARN] Docker may not function correctly on this managed workstation.\n")
	}
	// The profile is complete; it is read-only from here on.
	return p
}

func describeProfile(out io.Writer, p platform.Profile) {
	fmt.Fprintf(out, "Detected platform: %s\n", p.Kind)
	if p.Kind == platform.Linux {
		if p.Distro != "" {
			fmt.Fprintf(out, "Distro: %s %s\n", p.Distro, p.DistroVersion)
		}
		if p.Restricted {
			fmt.Fprintln(out, "Managed workstation detected (Docker blocked by policy).")
		}
	}
}

// confirm asks the operator to proceed; Enter or yes continues, anything
// starting with n aborts.
func confirm(in *bufio.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Proceed with setup? [Y/n]: ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "n")
}

// init registers the setup command and its flags with the root command.
func init() {
	setupCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML tool catalog (defaults to the built-in catalog)")
	rootCmd.AddCommand(setupCmd)
}
