package varfind

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan completed (problems may have been reported)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitScanHalted   = 20 // Scan stopped by the halt error policy
)

const (
	// DefaultFilePattern matches every file base name.
	DefaultFilePattern = "*"

	// DefaultMaxLineBytes bounds a single line read from a scanned file.
	// Longer lines fail the file with a FileRead problem.
	DefaultMaxLineBytes = 16 * 1024 * 1024

	// DefaultDelimiter is the field separator of input tables.
	DefaultDelimiter = ','

	// DefaultOpenRetryAttempts is how many times a transient open failure is retried.
	DefaultOpenRetryAttempts = 3

	// DefaultOpenRetryDelay is the initial backoff before retrying a file open.
	DefaultOpenRetryDelay = 10 * time.Millisecond

	// DefaultOpenRetryMaxDelay caps the backoff between file open retries.
	DefaultOpenRetryMaxDelay = 500 * time.Millisecond
)

// Column header names of the output table.
const (
	HeaderVariable   = "Variable"
	HeaderFilePath   = "File Path"
	HeaderLineNumber = "Line Number"
)
