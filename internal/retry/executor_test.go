package retry

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts,
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(2*time.Millisecond),
		WithJitter(0),
	)
}

var errTooManyFiles = &fs.PathError{Op: "open", Path: "a.txt", Err: syscall.EMFILE}

func TestExecutor_SucceedsFirstTry(t *testing.T) {
	exec := NewExecutor(NewFileOpenClassifier(), fastBackoff(3))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutor_RetriesTransientUntilSuccess(t *testing.T) {
	var retries []int
	exec := NewExecutor(NewFileOpenClassifier(), fastBackoff(3)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			assert.ErrorIs(t, err, syscall.EMFILE)
			retries = append(retries, attempt)
		})

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTooManyFiles
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_PermanentErrorNotRetried(t *testing.T) {
	exec := NewExecutor(NewFileOpenClassifier(), fastBackoff(3))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fs.ErrPermission
	})

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, 1, calls)
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	exec := NewExecutor(NewFileOpenClassifier(), fastBackoff(2))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errTooManyFiles
	})

	assert.ErrorIs(t, err, syscall.EMFILE)
	assert.Equal(t, 3, calls, "initial attempt plus two retries")
}

func TestExecutor_StopsOnPermanentAfterTransient(t *testing.T) {
	exec := NewExecutor(NewFileOpenClassifier(), fastBackoff(5))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return errTooManyFiles
		}
		return fs.ErrNotExist
	})

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 2, calls)
}

func TestExecutor_ContextCancelled(t *testing.T) {
	exec := NewExecutor(NewFileOpenClassifier(), NewExponentialBackoff(-1,
		WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- exec.Execute(ctx, func(ctx context.Context) error { return errTooManyFiles })
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Execute did not return after cancellation")
	}
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fastBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewFileOpenClassifier(), nil) })
}
