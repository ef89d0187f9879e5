package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/varfind/internal/config"
	"github.com/vvka-141/varfind/internal/files/loader"
)

type targetsFlagValues struct {
	column    string
	delimiter string
}

func newTargetsCmd() *cobra.Command {
	flags := &targetsFlagValues{}

	cmd := &cobra.Command{
		Use:   "targets <input>",
		Short: "Print the unique targets of one input column",
		Long: `Targets loads one column of the input table the same way scan does and
prints its unique non-empty values in sorted order, one per line.

Use it to check what a scan will search for before running it.

Examples:
  varfind targets variables.csv
  varfind targets variables.tsv --column ID --delimiter tab`,
		Args:              RequireInputPath,
		ValidArgsFunction: completeTables,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargets(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.column, "column", "c", "Name",
		"Header of the column to read")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "",
		"Field delimiter, a single character or \"tab\" (default \",\")")

	return cmd
}

func runTargets(cmd *cobra.Command, input string, flags *targetsFlagValues) error {
	delimiter, err := config.ParseDelimiter(flags.delimiter)
	if err != nil {
		return err
	}

	targets, err := loader.NewLoader().WithDelimiter(delimiter).Load(input, flags.column)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range targets.Sorted() {
		fmt.Fprintln(out, t)
	}
	if getVerboseFlag(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d unique targets in column %q\n", targets.Len(), flags.column)
	}
	return nil
}
