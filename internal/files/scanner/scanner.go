package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/varfind/internal/files/filesystem"
	"github.com/vvka-141/varfind/internal/match"
	"github.com/vvka-141/varfind/internal/retry"
	"github.com/vvka-141/varfind/internal/textio"
	"github.com/vvka-141/varfind/pkg/varfind"
)

// ctxCheckInterval is how many lines a worker reads between cancellation checks.
const ctxCheckInterval = 256

// errHalted stops the walk once a problem has been recorded under ErrorPolicyHalt.
var errHalted = errors.New("halted")

// Scanner finds target occurrences in a directory tree.
// It keeps no state between scans and is safe for concurrent use by multiple
// goroutines as long as the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     varfind.Logger
	opener     *retry.Executor
}

var _ varfind.TreeScanner = (*Scanner)(nil)

// NewScanner creates a scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger varfind.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger varfind.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	opener := retry.NewExecutor(
		retry.NewFileOpenClassifier(),
		retry.NewExponentialBackoff(varfind.DefaultOpenRetryAttempts),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("Retrying open in %v (retry %d): %v", delay, attempt+1, err)
	})

	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
		opener:     opener,
	}
}

// hit is one (target, line) pair found in a file; target indexes the
// ResultMap keys.
type hit struct {
	target int
	line   int
}

// event is one step of the walk in traversal order: either a traversal
// problem or a file handed to a worker.
type event struct {
	problem error

	path string
	hits []hit
	err  error
}

// Scan traverses cfg.RootDir and records every line containing a target.
//
// Traversal and filtering run sequentially on the calling goroutine; file
// contents are scanned by up to cfg.Concurrency workers. Each file's hits are
// buffered and committed in traversal order once the walk is over, so the
// ResultMap does not depend on scheduling. A file that fails contributes no
// occurrences.
//
// Under ErrorPolicyHalt the first problem ends the scan; the partial report
// is returned with an error wrapping varfind.ErrScanHalted and the problem.
// When ctx is done the partial report is returned with ctx.Err().
func (s *Scanner) Scan(ctx context.Context, cfg varfind.ScanConfig, targets varfind.TargetSet) (*varfind.Report, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan configuration: %w", err)
	}

	report := &varfind.Report{
		RunID:   uuid.New(),
		Results: varfind.NewResultMap(targets),
	}
	defer func() {
		report.Elapsed = time.Since(start)
		s.logSummary(report)
	}()

	keys := report.Results.Targets()
	if len(keys) == 0 {
		s.logger.Verbose("No targets to search for, skipping %s", cfg.RootDir)
		return report, nil
	}

	folder := textio.NewFolder()
	folded := make([]string, len(keys))
	for i, k := range keys {
		folded[i] = folder.Fold(k)
	}
	matcher, err := match.New(cfg.Matcher, folded)
	if err != nil {
		return nil, err
	}

	halt := cfg.ErrorPolicy == varfind.ErrorPolicyHalt
	maxLine := cfg.MaxLineBytes
	if maxLine == 0 {
		maxLine = varfind.DefaultMaxLineBytes
	}
	workers := cfg.Concurrency
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	dir, err := s.fsProvider.Open(cfg.RootDir)
	if err != nil {
		problem := varfind.NewError(varfind.KindTraversal, cfg.RootDir, err)
		s.logger.Error("%v", problem)
		report.Problems = append(report.Problems, problem)
		if halt {
			return report, fmt.Errorf("%w: %w", varfind.ErrScanHalted, problem)
		}
		return report, nil
	}

	var (
		events []*event
		halted atomic.Bool
		g      errgroup.Group
	)
	g.SetLimit(workers)

	walkErr := dir.Walk(func(file filesystem.File, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if halted.Load() {
			return errHalted
		}

		if walkErr != nil {
			events = append(events, &event{problem: varfind.NewError(varfind.KindTraversal, file.Path(), walkErr)})
			if halt {
				halted.Store(true)
				return errHalted
			}
			return nil
		}

		if file.IsDir() {
			if cfg.Filter.ExcludesDir(file.Path()) {
				report.DirsExcluded++
				s.logger.Verbose("Excluding directory: %s", file.Path())
				return filesystem.SkipDir
			}
			report.DirsVisited++
			s.logger.Verbose("Scanning directory: %s", file.Path())
			return nil
		}

		if !cfg.Filter.MatchesFile(file.Name()) {
			report.FilesSkipped++
			return nil
		}

		if file.IsSymlink() {
			info, err := s.fsProvider.Stat(file.Path())
			if err != nil {
				events = append(events, &event{path: file.Path(), err: varfind.NewError(varfind.KindFileRead, file.Path(), err)})
				if halt {
					halted.Store(true)
					return errHalted
				}
				return nil
			}
			if info.IsDir() {
				// Linked directories are not followed.
				return nil
			}
			if !info.Mode().IsRegular() {
				report.FilesSkipped++
				s.logger.Verbose("Skipping non-regular file: %s", file.Path())
				return nil
			}
		} else if !file.IsRegular() {
			// FIFOs, sockets and devices can block or never end.
			report.FilesSkipped++
			s.logger.Verbose("Skipping non-regular file: %s", file.Path())
			return nil
		}

		ev := &event{path: file.Path()}
		events = append(events, ev)

		s.logger.Verbose("Scanning file: %s", file.Path())
		g.Go(func() error {
			ev.hits, ev.err = s.scanFile(ctx, ev.path, matcher, maxLine)
			if ev.err != nil && halt && ctx.Err() == nil {
				halted.Store(true)
			}
			return nil
		})
		return nil
	})
	_ = g.Wait()

	s.commit(ctx, report, keys, events, halt)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	if walkErr != nil && !errors.Is(walkErr, errHalted) {
		// Only a panicking callback gets here.
		return report, fmt.Errorf("walking %s: %w", cfg.RootDir, walkErr)
	}
	if halt && len(report.Problems) > 0 {
		return report, fmt.Errorf("%w: %w", varfind.ErrScanHalted, report.Problems[0])
	}
	return report, nil
}

// commit replays the walk events in traversal order into report.
// Under halt it stops at the first problem.
func (s *Scanner) commit(ctx context.Context, report *varfind.Report, keys []string, events []*event, halt bool) {
	for _, ev := range events {
		problem := ev.problem
		if problem == nil && ev.err != nil {
			if ctx.Err() != nil && isContextErr(ev.err) {
				continue
			}
			problem = ev.err
		}

		if problem != nil {
			s.logger.Error("%v", problem)
			report.Problems = append(report.Problems, problem)
			if halt {
				return
			}
			continue
		}

		report.FilesScanned++
		for _, h := range ev.hits {
			s.logger.Info("Found %q in %s at line %d", keys[h.target], ev.path, h.line)
			report.Results.Append(keys[h.target], varfind.Occurrence{FilePath: ev.path, Line: h.line})
		}
	}
}

// scanFile reads path line by line and returns its hits in line order.
// Any failure discards the hits collected so far.
func (s *Scanner) scanFile(ctx context.Context, path string, matcher match.Matcher, maxLine int) ([]hit, error) {
	var rc io.ReadCloser
	err := s.opener.Execute(ctx, func(ctx context.Context) error {
		var openErr error
		rc, openErr = s.fsProvider.OpenFile(path)
		return openErr
	})
	if err != nil {
		if isContextErr(err) {
			return nil, err
		}
		return nil, varfind.NewError(varfind.KindFileRead, path, err)
	}
	defer rc.Close()

	var (
		hits  []hit
		found []int
	)
	folder := textio.NewFolder()
	lines := textio.NewLineScanner(ctxReader{ctx: ctx, r: rc}, maxLine)

	lineNo := 0
	for lines.Scan() {
		lineNo++
		if lineNo%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		found = matcher.FindAll(folder.Fold(lines.Text()), found[:0])
		for _, idx := range found {
			hits = append(hits, hit{target: idx, line: lineNo})
		}
	}

	if err := lines.Err(); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line %d exceeds %d bytes (raise max_line_bytes or --max-line-bytes): %w", lineNo+1, maxLine, err)
		}
		return nil, varfind.NewError(varfind.KindFileRead, path, err)
	}

	return hits, nil
}

// ctxReader fails reads once ctx is done, so a single long line cannot
// outlive a cancelled scan.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func (s *Scanner) logSummary(r *varfind.Report) {
	s.logger.Info("Scan %s finished in %v: %d targets, %d occurrences, %d files scanned, %d skipped, %d directories (%d excluded), %d problems",
		r.RunID, r.Elapsed.Round(time.Millisecond),
		r.Results.Len(), r.Results.TotalOccurrences(),
		r.FilesScanned, r.FilesSkipped,
		r.DirsVisited, r.DirsExcluded,
		len(r.Problems))
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
