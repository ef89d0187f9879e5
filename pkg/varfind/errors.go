package varfind

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	set, err := loader.Load("inventory.csv", "Name")
//	if errors.Is(err, varfind.ErrSourceRead) {
//	    // Report and continue with whatever was loaded
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceRead indicates the input table could not be opened or parsed.
	ErrSourceRead = errors.New("source read failed")

	// ErrTraversal indicates a directory could not be opened or listed.
	ErrTraversal = errors.New("traversal failed")

	// ErrFileRead indicates an individual file could not be opened or decoded.
	ErrFileRead = errors.New("file read failed")

	// ErrSinkWrite indicates the output destination could not be written.
	ErrSinkWrite = errors.New("sink write failed")

	// ErrScanHalted indicates the scan stopped early under ErrorPolicyHalt.
	ErrScanHalted = errors.New("scan halted")
)

// ErrorKind classifies recoverable failures. The set is closed.
type ErrorKind int

const (
	KindSourceRead ErrorKind = iota + 1
	KindTraversal
	KindFileRead
	KindSinkWrite
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSourceRead:
		return "SourceRead"
	case KindTraversal:
		return "Traversal"
	case KindFileRead:
		return "FileRead"
	case KindSinkWrite:
		return "SinkWrite"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindSourceRead:
		return ErrSourceRead
	case KindTraversal:
		return ErrTraversal
	case KindFileRead:
		return ErrFileRead
	case KindSinkWrite:
		return ErrSinkWrite
	default:
		return nil
	}
}

// Error is a recoverable failure tied to one path.
// errors.Is matches it against the sentinel of its kind as well as the wrapped cause.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError wraps err as a failure of the given kind at path.
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the ErrorKind carried by err, or 0 when err is not a *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScanHalted):
		return ExitScanHalted
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
