package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// SearchService implements the Searcher interface.
// It holds no per-run state; concurrent Search calls are safe when the
// injected dependencies are.
type SearchService struct {
	loader  varfind.TargetLoader
	scanner varfind.TreeScanner
	writer  varfind.ResultWriter
	logger  varfind.Logger
}

var _ varfind.Searcher = (*SearchService)(nil)

// NewSearchService creates a SearchService with all dependencies injected.
// Panics on nil dependencies: they are wiring mistakes, not runtime conditions.
func NewSearchService(
	loader varfind.TargetLoader,
	scanner varfind.TreeScanner,
	writer varfind.ResultWriter,
	logger varfind.Logger,
) *SearchService {
	if loader == nil {
		panic("loader cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &SearchService{
		loader:  loader,
		scanner: scanner,
		writer:  writer,
		logger:  logger,
	}
}

// Search runs every column in order: load its targets, scan the tree, write
// the table. A column whose targets fail to load is still scanned with what
// was read, so its table is always written.
func (s *SearchService) Search(ctx context.Context, cfg varfind.SearchConfig) ([]varfind.ColumnResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	halt := cfg.Scan.ErrorPolicy == varfind.ErrorPolicyHalt
	results := make([]varfind.ColumnResult, 0, len(cfg.Columns))

	for _, job := range cfg.Columns {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := s.runColumn(ctx, cfg, job, halt)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (s *SearchService) runColumn(ctx context.Context, cfg varfind.SearchConfig, job varfind.ColumnJob, halt bool) (varfind.ColumnResult, error) {
	result := varfind.ColumnResult{Job: job}

	s.logger.Verbose("Loading column %q from %s", job.Column, cfg.InputPath)
	targets, err := s.loader.Load(cfg.InputPath, job.Column)
	if err != nil {
		s.logger.Error("%v", err)
		result.LoadErr = err
		if halt {
			return result, fmt.Errorf("%w: %w", varfind.ErrScanHalted, err)
		}
	}
	s.logger.Verbose("Loaded %d unique targets from column %q", targets.Len(), job.Column)

	report, err := s.scanner.Scan(ctx, cfg.Scan, targets)
	result.Report = report
	if err != nil {
		return result, err
	}

	if err := s.writer.Write(report.Results, job.Output); err != nil {
		s.logger.Error("%v", err)
		result.WriteErr = err
		if halt {
			return result, fmt.Errorf("%w: %w", varfind.ErrScanHalted, err)
		}
		return result, nil
	}

	s.logger.Info("✓ Column %q: %d targets, %d occurrences written to %s",
		job.Column, report.Results.Len(), report.Results.TotalOccurrences(), job.Output)
	return result, nil
}
