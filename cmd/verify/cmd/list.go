package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/verify/suite"
)

var comparators bool

var listCmd = &cobra.Command{
	Use:           "list",
	Short:         "list the supported assertions",
	Long:          "Lists the assertion names usable in the assert field of a case.",
	Args:          cobra.NoArgs,
	RunE:          list,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	listCmd.Flags().BoolVarP(&comparators, "comparators", "", false, "list the comparator names instead")
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	names := suite.Assertions()
	if comparators {
		names = suite.Comparators()
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
