// Package retry provides a small combinator for re-running fallible
// operations with a pluggable backoff schedule.
package retry

import (
	"context"
	"time"
)

// BackoffFunc returns the delay before the given retry attempt
// (attempt 1 is the first retry).
type BackoffFunc func(attempt int) time.Duration

// Linear waits step, 2*step, 3*step, ...
func Linear(step time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Do runs op up to attempts times, sleeping backoff(n) between tries,
// and returns the first success or the last error. Context
// cancellation cuts the wait short and returns ctx.Err.
func Do[T any](ctx context.Context, attempts int, backoff BackoffFunc, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for n := 1; n <= attempts; n++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if n == attempts {
			break
		}
		var wait time.Duration
		if backoff != nil {
			wait = backoff(n)
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
	return zero, lastErr
}
