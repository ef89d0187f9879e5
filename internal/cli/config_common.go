package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/varfind/internal/config"
	"github.com/vvka-141/varfind/internal/params"
	"github.com/vvka-141/varfind/pkg/varfind"
)

// scanFlagValues holds the scan command's flag values.
type scanFlagValues struct {
	input       string
	columns     []string
	pattern     string
	excludeExt  []string
	excludePath []string
	concurrency int
	maxLine     int
	matcher     string
	haltOnError bool
	delimiter   string
	configPath  string
	quiet       bool
}

// loadProjectConfig loads .env into the environment, then the project config.
// Without --config a missing varfind.yaml is not an error; an explicit path must exist.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		projectCfg *config.ProjectConfig
		err        error
	)
	if configPath != "" {
		projectCfg, err = config.LoadFile(configPath)
	} else {
		projectCfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			projectCfg, err = &config.ProjectConfig{}, nil
		}
	}
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%v: %w", err, varfind.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := projectCfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return projectCfg, nil
}

// resolveSearchConfig merges settings with priority flags > environment >
// varfind.yaml > defaults, and returns the input delimiter alongside.
func resolveSearchConfig(cmd *cobra.Command, args []string, flags *scanFlagValues, projectCfg *config.ProjectConfig) (varfind.SearchConfig, rune, error) {
	changed := cmd.Flags().Changed

	root := projectCfg.Root
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		root = "."
	}

	input := projectCfg.Input
	if changed("input") {
		input = flags.input
	}
	if input == "" {
		return varfind.SearchConfig{}, 0, fmt.Errorf(`no input table given: %w

Tip: pass --input, set input in varfind.yaml or set $%s
  varfind scan ./src --input variables.csv`, varfind.ErrInvalidConfig, config.EnvInput)
	}

	columns, err := resolveColumns(flags.columns, projectCfg.Columns)
	if err != nil {
		return varfind.SearchConfig{}, 0, err
	}

	filter := varfind.FilterConfig{
		FilePattern:           projectCfg.Pattern,
		ExcludedExtensions:    projectCfg.ExcludeExtensions,
		ExcludedPathFragments: projectCfg.ExcludePaths,
	}
	if changed("pattern") {
		filter.FilePattern = flags.pattern
	}
	if changed("exclude-ext") {
		filter.ExcludedExtensions = flags.excludeExt
	}
	if changed("exclude-path") {
		filter.ExcludedPathFragments = flags.excludePath
	}

	concurrency := projectCfg.Concurrency
	if changed("concurrency") {
		concurrency = flags.concurrency
	}

	maxLine := projectCfg.MaxLineBytes
	if changed("max-line-bytes") {
		maxLine = flags.maxLine
	}

	matcherName := projectCfg.Matcher
	if changed("matcher") {
		matcherName = flags.matcher
	}
	matcher, err := varfind.ParseMatcherKind(matcherName)
	if err != nil {
		return varfind.SearchConfig{}, 0, err
	}

	policy, err := varfind.ParseErrorPolicy(projectCfg.ErrorPolicy)
	if err != nil {
		return varfind.SearchConfig{}, 0, err
	}
	if changed("halt-on-error") {
		policy = varfind.ErrorPolicyContinue
		if flags.haltOnError {
			policy = varfind.ErrorPolicyHalt
		}
	}

	delimiterText := projectCfg.Delimiter
	if changed("delimiter") {
		delimiterText = flags.delimiter
	}
	delimiter, err := config.ParseDelimiter(delimiterText)
	if err != nil {
		return varfind.SearchConfig{}, 0, err
	}

	cfg := varfind.SearchConfig{
		InputPath: input,
		Columns:   columns,
		Scan: varfind.ScanConfig{
			RootDir:      root,
			Filter:       filter,
			Concurrency:  concurrency,
			Matcher:      matcher,
			ErrorPolicy:  policy,
			MaxLineBytes: maxLine,
		},
	}
	if err := cfg.Validate(); err != nil {
		return varfind.SearchConfig{}, 0, err
	}
	return cfg, delimiter, nil
}

// resolveColumns prefers --column flags, then varfind.yaml, then the defaults.
func resolveColumns(flagColumns []string, cfgColumns []config.ColumnConfig) ([]varfind.ColumnJob, error) {
	if len(flagColumns) > 0 {
		pairs, err := params.ParseKeyValuePairs(flagColumns)
		if err != nil {
			return nil, fmt.Errorf("invalid --column: %v: %w", err, varfind.ErrInvalidConfig)
		}
		jobs := make([]varfind.ColumnJob, len(pairs))
		for i, p := range pairs {
			jobs[i] = varfind.ColumnJob{Column: p.Key, Output: p.Value}
		}
		return jobs, nil
	}

	if len(cfgColumns) > 0 {
		jobs := make([]varfind.ColumnJob, len(cfgColumns))
		for i, c := range cfgColumns {
			jobs[i] = varfind.ColumnJob{Column: c.Name, Output: c.Output}
		}
		return jobs, nil
	}

	return varfind.DefaultColumnJobs(), nil
}
