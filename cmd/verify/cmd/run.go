package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scenarigo/verify/color"
	"github.com/scenarigo/verify/reporter"
	"github.com/scenarigo/verify/suite"
)

// ErrTestFailed is the error returned when a case has an unexpected outcome.
var ErrTestFailed = errors.New("test failed")

var (
	verbose  bool
	parallel int
)

func init() {
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	runCmd.Flags().IntVarP(&parallel, "parallel", "", 0, "specify the number of suite files loaded in parallel")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "run assertion suites",
	Long: `Runs assertion suites.

Directories are searched recursively for .yaml and .yml files.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	if parallel > 0 {
		cfg.Parallel = parallel
	}

	files, err := suiteFiles(args)
	if err != nil {
		return err
	}
	suites, err := suite.LoadFiles(cmd.Context(), files, cfg.Parallel)
	if err != nil {
		return err
	}

	colors := color.FromConfig(cfg)
	r, err := suite.NewRunner(suite.WithConfig(cfg), suite.WithColorConfig(colors))
	if err != nil {
		return err
	}
	p := reporter.NewPrinter(cmd.OutOrStdout(), colors, cfg.Verbose)
	var summary reporter.Summary
	for _, s := range suites {
		results, err := r.Run(cmd.Context(), s)
		if err != nil {
			return err
		}
		for _, res := range results {
			summary.Add(res)
			if err := p.Print(res); err != nil {
				return err
			}
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), summary.String(colors))
	if summary.Failed() {
		return ErrTestFailed
	}
	return nil
}

// suiteFiles expands the directories of paths into the YAML files they hold.
func suiteFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if p == path {
				files = append(files, p)
				return nil
			}
			switch filepath.Ext(p) {
			case ".yaml", ".yml":
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find suites in %s", path)
		}
	}
	return files, nil
}
