package varfind

import (
	"errors"
	"fmt"
)

// ColumnJob names an input column to search for and the table its results go to.
type ColumnJob struct {
	Column string
	Output string
}

// DefaultColumnJobs are run when no columns are configured.
func DefaultColumnJobs() []ColumnJob {
	return []ColumnJob{
		{Column: "Name", Output: "search_results_by_name.csv"},
		{Column: "ID", Output: "search_results_by_id.csv"},
	}
}

// SearchConfig describes one invocation: where targets come from, which
// columns to run, and how to scan.
type SearchConfig struct {
	// InputPath is the table holding the target columns (required).
	InputPath string

	// Columns are run in order, each producing its own output table.
	Columns []ColumnJob

	Scan ScanConfig
}

// Validate checks the invocation and the embedded ScanConfig.
func (c *SearchConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}
	if len(c.Columns) == 0 {
		errs = append(errs, fmt.Errorf("at least one column is required: %w", ErrInvalidConfig))
	}
	for i, job := range c.Columns {
		if job.Column == "" || job.Output == "" {
			errs = append(errs, fmt.Errorf("column %d needs both a name and an output: %w", i+1, ErrInvalidConfig))
		}
	}
	if err := c.Scan.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ColumnResult is the outcome of one column run.
type ColumnResult struct {
	Job ColumnJob

	// Report is nil only when the scan could not start.
	Report *Report

	// LoadErr is the SourceRead problem met while loading targets, if any.
	LoadErr error

	// WriteErr is the SinkWrite problem met while writing the table, if any.
	WriteErr error
}
