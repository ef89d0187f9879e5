// Package retry retries operations that fail for transient reasons, waiting
// with exponential backoff between attempts.
//
// Classification and timing are pluggable. FileOpenClassifier treats
// descriptor exhaustion and interrupted system calls as transient, which is
// what a wide parallel tree scan runs into when it opens many files at once.
//
//	exec := retry.NewExecutor(retry.NewFileOpenClassifier(), retry.NewExponentialBackoff(3))
//	err := exec.Execute(ctx, func(ctx context.Context) error {
//	    rc, err = fsys.OpenFile(path)
//	    return err
//	})
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
