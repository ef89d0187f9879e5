package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/varfind/internal/report"
	"github.com/vvka-141/varfind/pkg/varfind"
)

// ErrTablesDiffer is returned by diff when the two tables hold different rows.
var ErrTablesDiffer = errors.New("tables differ")

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two result tables",
		Long: `Diff compares two result tables as sets of (variable, file, line) rows.
Row order and duplicates are ignored, so tables from runs with different
concurrency settings compare equal.

Rows only in <a> are printed with "-", rows only in <b> with "+".
The command exits with 1 when the tables differ.

Examples:
  varfind diff before.csv after.csv
  varfind diff search_results_by_name.csv baseline.yaml`,
		Args:              RequireTwoTables,
		ValidArgsFunction: completeTables,
		RunE:              runDiff,
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := report.Read(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	b, err := report.Read(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	d := report.Diff(a, b)
	if d.Empty() {
		if getVerboseFlag(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s and %s hold the same %d rows\n", args[0], args[1], len(a))
		}
		return nil
	}

	out := cmd.OutOrStdout()
	printTriples(out, "-", d.OnlyInA)
	printTriples(out, "+", d.OnlyInB)
	return fmt.Errorf("%w: %d only in %s, %d only in %s",
		ErrTablesDiffer, len(d.OnlyInA), args[0], len(d.OnlyInB), args[1])
}

func printTriples(w io.Writer, prefix string, triples []varfind.Triple) {
	for _, t := range triples {
		fmt.Fprintf(w, "%s %s,%s,%d\n", prefix, t.Variable, t.FilePath, t.Line)
	}
}
