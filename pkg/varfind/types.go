package varfind

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TargetSet is a set of unique, non-empty search targets.
// Targets are kept verbatim; case folding happens at match time.
type TargetSet struct {
	items map[string]struct{}
}

// NewTargetSet builds a set from values, dropping empty strings and duplicates.
func NewTargetSet(values ...string) TargetSet {
	s := TargetSet{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was newly added.
// Empty strings are never added.
func (s *TargetSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	if _, ok := s.items[v]; ok {
		return false
	}
	s.items[v] = struct{}{}
	return true
}

// Contains reports whether v is in the set.
func (s TargetSet) Contains(v string) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of targets.
func (s TargetSet) Len() int { return len(s.items) }

// Sorted returns the targets in ascending byte order.
func (s TargetSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterConfig controls which parts of the tree are scanned.
// It is read-only for the duration of a scan.
type FilterConfig struct {
	// FilePattern is a glob matched against file base names ("*", "?", "[...]").
	// Empty means DefaultFilePattern.
	FilePattern string

	// ExcludedExtensions are name suffixes; a file ending in any of them is skipped.
	ExcludedExtensions []string

	// ExcludedPathFragments are substrings; a directory whose path contains any
	// of them is skipped along with its whole subtree.
	ExcludedPathFragments []string
}

func (f FilterConfig) pattern() string {
	if f.FilePattern == "" {
		return DefaultFilePattern
	}
	return f.FilePattern
}

// Validate rejects malformed glob patterns.
func (f FilterConfig) Validate() error {
	if _, err := filepath.Match(f.pattern(), ""); err != nil {
		return fmt.Errorf("file pattern %q: %v: %w", f.FilePattern, err, ErrInvalidConfig)
	}
	return nil
}

// MatchesFile reports whether a file base name passes the pattern and
// extension filters.
func (f FilterConfig) MatchesFile(name string) bool {
	ok, err := filepath.Match(f.pattern(), name)
	if err != nil || !ok {
		return false
	}
	for _, ext := range f.ExcludedExtensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return false
		}
	}
	return true
}

// ExcludesDir reports whether a directory path contains an excluded fragment.
func (f FilterConfig) ExcludesDir(path string) bool {
	for _, frag := range f.ExcludedPathFragments {
		if frag != "" && strings.Contains(path, frag) {
			return true
		}
	}
	return false
}

// MatcherKind selects the multi-target matching strategy.
type MatcherKind string

const (
	// MatcherAutomaton uses an Aho-Corasick automaton, linear in line length.
	MatcherAutomaton MatcherKind = "automaton"
	// MatcherNaive tests each target against each line.
	MatcherNaive MatcherKind = "naive"
)

// ParseMatcherKind converts a user-supplied name into a MatcherKind.
func ParseMatcherKind(s string) (MatcherKind, error) {
	switch k := MatcherKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return MatcherAutomaton, nil
	case MatcherAutomaton, MatcherNaive:
		return k, nil
	default:
		return "", fmt.Errorf("unknown matcher %q (want automaton or naive): %w", s, ErrInvalidConfig)
	}
}

// ErrorPolicy decides what a scan does after a recoverable failure.
type ErrorPolicy string

const (
	// ErrorPolicyContinue records the problem and keeps scanning.
	ErrorPolicyContinue ErrorPolicy = "continue"
	// ErrorPolicyHalt stops the scan at the first problem.
	ErrorPolicyHalt ErrorPolicy = "halt"
)

// ParseErrorPolicy converts a user-supplied name into an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ErrorPolicyContinue, nil
	case ErrorPolicyContinue, ErrorPolicyHalt:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want continue or halt): %w", s, ErrInvalidConfig)
	}
}

// ScanConfig contains all parameters needed for one scan.
type ScanConfig struct {
	// RootDir is the directory to traverse (required).
	RootDir string

	// Filter selects which directories and files are scanned.
	Filter FilterConfig

	// Concurrency bounds the number of files scanned in parallel.
	// 0 means one worker per CPU; 1 scans files sequentially.
	Concurrency int

	// Matcher selects the matching strategy. Empty means MatcherAutomaton.
	Matcher MatcherKind

	// ErrorPolicy decides whether problems stop the scan. Empty means continue.
	ErrorPolicy ErrorPolicy

	// MaxLineBytes bounds a single line. 0 means DefaultMaxLineBytes.
	MaxLineBytes int
}

// Validate checks if the ScanConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.RootDir == "" {
		errs = append(errs, fmt.Errorf("RootDir is required: %w", ErrInvalidConfig))
	}

	if err := c.Filter.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency cannot be negative: %w", ErrInvalidConfig))
	}

	if c.MaxLineBytes < 0 {
		errs = append(errs, fmt.Errorf("max line bytes cannot be negative: %w", ErrInvalidConfig))
	}

	if _, err := ParseMatcherKind(string(c.Matcher)); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseErrorPolicy(string(c.ErrorPolicy)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Occurrence is one line in one file where a target was found.
type Occurrence struct {
	FilePath string
	Line     int // 1-based
}

// Triple is a flattened (variable, file, line) row of a ResultMap.
type Triple struct {
	Variable string
	FilePath string
	Line     int
}

// ResultMap maps each requested target to its occurrences in discovery order.
// Every requested target has an entry, even with no occurrences.
// Targets iterate in ascending order.
type ResultMap struct {
	keys []string
	hits map[string][]Occurrence
}

// NewResultMap creates a map with an empty entry for every target.
func NewResultMap(targets TargetSet) *ResultMap {
	keys := targets.Sorted()
	hits := make(map[string][]Occurrence, len(keys))
	for _, k := range keys {
		hits[k] = []Occurrence{}
	}
	return &ResultMap{keys: keys, hits: hits}
}

// Targets returns the targets in iteration order.
func (m *ResultMap) Targets() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether target has an entry.
func (m *ResultMap) Has(target string) bool {
	_, ok := m.hits[target]
	return ok
}

// Occurrences returns the occurrences recorded for target.
func (m *ResultMap) Occurrences(target string) []Occurrence {
	return m.hits[target]
}

// Append records an occurrence for target, adding the entry if needed.
func (m *ResultMap) Append(target string, occ Occurrence) {
	if m.hits == nil {
		m.hits = make(map[string][]Occurrence)
	}
	if _, ok := m.hits[target]; !ok {
		i := sort.SearchStrings(m.keys, target)
		m.keys = append(m.keys, "")
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = target
	}
	m.hits[target] = append(m.hits[target], occ)
}

// Len returns the number of targets.
func (m *ResultMap) Len() int { return len(m.keys) }

// TotalOccurrences returns the number of occurrences across all targets.
func (m *ResultMap) TotalOccurrences() int {
	n := 0
	for _, occs := range m.hits {
		n += len(occs)
	}
	return n
}

// Triples flattens the map in iteration order.
func (m *ResultMap) Triples() []Triple {
	out := make([]Triple, 0, m.TotalOccurrences())
	for _, k := range m.keys {
		for _, occ := range m.hits[k] {
			out = append(out, Triple{Variable: k, FilePath: occ.FilePath, Line: occ.Line})
		}
	}
	return out
}

// Report is the outcome of one scan.
type Report struct {
	// RunID identifies the scan in logs.
	RunID uuid.UUID

	// Results holds the per-target occurrences.
	Results *ResultMap

	// Problems are the recoverable failures met along the way, in discovery order.
	Problems []error

	DirsVisited  int
	DirsExcluded int
	FilesScanned int
	FilesSkipped int

	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}

// ProblemCount returns how many problems of the given kind were recorded.
func (r *Report) ProblemCount(kind ErrorKind) int {
	n := 0
	for _, p := range r.Problems {
		if KindOf(p) == kind {
			n++
		}
	}
	return n
}
