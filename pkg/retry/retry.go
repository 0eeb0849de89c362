package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryableError marks a failure worth another attempt. Do unwraps it before
// returning, so callers see the original error.
type RetryableError struct {
	Cause error
}

func (re *RetryableError) Error() string {
	return fmt.Sprintf("retryable-error: %v", re.Cause)
}

func (re *RetryableError) Unwrap() error { return re.Cause }

// Retryable wraps err in a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Cause: err}
}

// Policy bounds how often an operation is attempted. The zero value makes a
// single attempt.
type Policy struct {
	MaxAttempts int
	Backoff     BackoffStrategy
}

func (p Policy) maxAttempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) delay(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff.Backoff(attempt)
}

// Do calls fn until it succeeds, returns an error that is not a
// RetryableError, or the policy runs out of attempts.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}

		var re *RetryableError
		if !errors.As(err, &re) {
			return err
		}
		if attempt >= p.maxAttempts() {
			return re.Cause
		}

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return re.Cause
		case <-timer.C:
		}
	}
}
