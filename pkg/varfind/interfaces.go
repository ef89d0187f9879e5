package varfind

import "context"

// TreeScanner finds target occurrences in a directory tree.
// Implementations must be safe for concurrent use by multiple goroutines.
type TreeScanner interface {
	// Scan traverses cfg.RootDir and returns a Report covering every target.
	// Under ErrorPolicyContinue problems are collected in the Report and the
	// returned error is nil unless ctx is done.
	Scan(ctx context.Context, cfg ScanConfig, targets TargetSet) (*Report, error)
}

// TargetLoader reads the search targets from a tabular source.
type TargetLoader interface {
	// Load returns the unique non-empty values under column.
	// On failure it still returns what was loaded, plus a SourceRead error.
	Load(path, column string) (TargetSet, error)
}

// ResultWriter serializes a ResultMap to a destination.
type ResultWriter interface {
	// Write emits the header and one row per occurrence.
	// Failures are returned as SinkWrite errors; results are never modified.
	Write(results *ResultMap, destination string) error
}

// Searcher runs the load, scan and write pipeline for every configured column.
type Searcher interface {
	// Search returns one ColumnResult per completed column run. Load and write
	// problems are recorded in the results; the error is non-nil only when the
	// run was halted, cancelled or misconfigured.
	Search(ctx context.Context, cfg SearchConfig) ([]ColumnResult, error)
}
