package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/varfind/internal/files/loader"
	"github.com/vvka-141/varfind/internal/files/scanner"
	"github.com/vvka-141/varfind/internal/logging"
	"github.com/vvka-141/varfind/internal/report"
	"github.com/vvka-141/varfind/internal/services"
	"github.com/vvka-141/varfind/pkg/varfind"
)

type scanCmdFlags struct {
	scanFlagValues
	timeout time.Duration
}

func newScanCmd() *cobra.Command {
	flags := &scanCmdFlags{}

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Search a directory tree for every target in the input table",
		Long: `Scan loads the targets of each configured column from the input table and
records every file and line of the tree where a target occurs.

Arguments:
  root    Directory to search (default: root from varfind.yaml, $VARFIND_ROOT or ".")

Configuration precedence: flags > environment > varfind.yaml > defaults.
A .env file in the working directory is loaded into the environment first.

Output tables have the header "Variable,File Path,Line Number". An output
ending in .yaml or .yml is written as YAML instead; "-" writes to stdout.

Examples:
  # Default columns (Name and ID) from variables.csv
  varfind scan ./src --input variables.csv

  # One column, custom output, only Go files, skipping vendor/
  varfind scan ./src --input variables.csv \
    --column Name=usages.csv --pattern '*.go' --exclude-path vendor

  # Stop at the first unreadable file
  varfind scan ./src --input variables.csv --halt-on-error`,
		Args:              OptionalRootPath,
		ValidArgsFunction: completeDirectories,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	bindScanFlags(cmd, flags)
	_ = cmd.RegisterFlagCompletionFunc("matcher", completeMatchers)
	_ = cmd.RegisterFlagCompletionFunc("input", completeTables)

	return cmd
}

func bindScanFlags(cmd *cobra.Command, flags *scanCmdFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "",
		"Input table holding the target columns (or $VARFIND_INPUT)")
	f.StringArrayVarP(&flags.columns, "column", "c", nil,
		"Column to search and its output table as NAME=OUTPUT (repeatable)\n"+
			"Default: Name=search_results_by_name.csv and ID=search_results_by_id.csv")
	f.StringVarP(&flags.pattern, "pattern", "p", "",
		"Glob matched against file names (default \"*\")")
	f.StringSliceVar(&flags.excludeExt, "exclude-ext", nil,
		"File name suffixes to skip, e.g. .min.js,.map (repeatable)")
	f.StringSliceVar(&flags.excludePath, "exclude-path", nil,
		"Skip directories whose path contains this fragment (repeatable)")
	f.IntVarP(&flags.concurrency, "concurrency", "j", 0,
		"Files scanned in parallel (0 = one per CPU, or $VARFIND_CONCURRENCY)")
	f.IntVar(&flags.maxLine, "max-line-bytes", 0,
		"Longest line a file may contain before it is reported as unreadable (0 = 16 MiB)")
	f.StringVar(&flags.matcher, "matcher", "",
		"Matching strategy: automaton|naive (default automaton)")
	f.BoolVar(&flags.haltOnError, "halt-on-error", false,
		"Stop at the first unreadable source, directory or file")
	f.StringVar(&flags.delimiter, "delimiter", "",
		"Input table field delimiter, a single character or \"tab\" (default \",\")")
	f.StringVar(&flags.configPath, "config", "",
		"Project config file (default ./varfind.yaml when present)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false,
		"Suppress all log output")
	f.DurationVar(&flags.timeout, "timeout", 0,
		"Abort the run after this duration (0 = no limit)")
}

func runScan(cmd *cobra.Command, args []string, flags *scanCmdFlags) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return err
	}

	cfg, delimiter, err := resolveSearchConfig(cmd, args, &flags.scanFlagValues, projectCfg)
	if err != nil {
		return err
	}

	var logger varfind.Logger
	if flags.quiet {
		logger = logging.NewNullLogger()
	} else {
		logger = logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	}

	searcher := services.NewSearchService(
		loader.NewLoader().WithDelimiter(delimiter),
		scanner.NewScanner(logger),
		report.NewWriterTo(cmd.OutOrStdout()),
		logger,
	)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second signal gets the default behaviour and kills the process.
		<-ctx.Done()
		stop()
	}()
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	results, err := searcher.Search(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil && !flags.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "\n[INTERRUPT] Scan cancelled")
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	if problems := countProblems(results); problems > 0 {
		logger.Info("%d problem(s) reported; affected files were left out of the results", problems)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func countProblems(results []varfind.ColumnResult) int {
	n := 0
	for _, r := range results {
		if r.LoadErr != nil {
			n++
		}
		if r.WriteErr != nil {
			n++
		}
		if r.Report != nil {
			n += len(r.Report.Problems)
		}
	}
	return n
}
