package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/verify/config"
)

const appName = "verify"

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", fmt.Sprintf("specify the configuration file path (default: %s)", config.DefaultFileName))
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: fmt.Sprintf("%s runs assertion suites written in YAML.", appName),
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.LoadDefault()
	}
	return config.Load(configPath)
}
