package cmd

import (
	"fmt"
	"os"
	goruntime "runtime"

	"github.com/spf13/cobra"

	"devsetup/internal/logger"
	"devsetup/internal/platform"
)

// envCmd prints the detected environment profile and exits without
// installing anything. Useful to check what `setup` would act on.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the detected host environment without installing anything",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := platform.Detect(goruntime.GOOS)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Platform:   %s\n", p.Kind)
		if p.Kind == platform.Linux {
			fmt.Printf("Distro:     %s %s\n", p.Distro, p.DistroVersion)
			fmt.Printf("Restricted: %v\n", p.Restricted)
			if p.Restricted {
				fmt.Println("This is a managed workstation; Podman is the recommended runtime.")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
