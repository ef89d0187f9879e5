package retry

import (
	"errors"
	"syscall"
	"time"
)

// ErrorClassifier decides whether an error is worth another attempt.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy controls how long to wait between attempts.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attempt (0-based).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the retry budget; negative means unlimited.
	MaxAttempts() int
}

// transientOpenErrnos are failures caused by momentary resource pressure
// rather than by the file itself.
var transientOpenErrnos = []syscall.Errno{
	syscall.EMFILE, // process descriptor table full
	syscall.ENFILE, // system descriptor table full
	syscall.EAGAIN,
	syscall.EINTR,
}

// FileOpenClassifier implements ErrorClassifier for file open failures.
type FileOpenClassifier struct{}

// NewFileOpenClassifier creates a new file open classifier.
func NewFileOpenClassifier() *FileOpenClassifier {
	return &FileOpenClassifier{}
}

// IsTransient reports whether err is a resource-exhaustion or interrupt error.
// Missing files, permission errors and everything else are permanent.
func (c *FileOpenClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	for _, errno := range transientOpenErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
