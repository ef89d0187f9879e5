package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "varfind",
		Short: "Find where known variables are used in a source tree",
		Long: `varfind loads a list of variable names or IDs from a CSV column and reports
every file and line of a directory tree where each one occurs.

Matching is a case-insensitive substring match. One CSV table is written per
searched column.

Exit Codes:
  0  - Success (problems with individual files are reported, not fatal)
  1  - General error (or 'diff' found differences)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Scan halted by --halt-on-error`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	root.AddCommand(newScanCmd())
	root.AddCommand(newTargetsCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return newRootCmd().Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
