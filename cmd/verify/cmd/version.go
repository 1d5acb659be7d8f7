package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is overwritten at build time with -ldflags "-X".
var version = "v0.1.0-dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version",
	Args:  cobra.NoArgs,
	Run:   printVersion,
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s version %s %s %s/%s\n", appName, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
