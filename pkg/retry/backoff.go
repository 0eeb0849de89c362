package retry

import (
	"math"
	"math/rand"
	"time"
)

//nolint:gosec
var randFloat = rand.New(rand.NewSource(time.Now().UnixNano())).Float64

// BackoffStrategy decides how long to wait before the next attempt.
type BackoffStrategy interface {
	// Backoff returns how much duration to wait after the given attempt
	Backoff(attempt int) time.Duration
}

// BackoffFunc is a adapter to use ordinary function as BackoffStrategy
type BackoffFunc func(attempt int) time.Duration

func (s BackoffFunc) Backoff(attempt int) time.Duration { return s(attempt) }

type ConstBackoff struct {
	// Delay is the time duration to wait before each retry attempt
	Delay time.Duration
}

func (c ConstBackoff) Backoff(int) time.Duration { return c.Delay }

// ExponentialBackoff implements exponential backoff. It is capped at MaxDelay.
type ExponentialBackoff struct {
	// InitialDelay is multiplied by Multiplier after each attempt
	Multiplier float64
	// InitialDelay is the backoff duration after the 1st attempt
	InitialDelay time.Duration
	// Backoff duration will be capped at MaxDelay. Zero means no cap.
	MaxDelay time.Duration
	// Fraction of the delay added at random after each attempt.
	Jitter float64
}

func (b *ExponentialBackoff) Backoff(attempt int) time.Duration {
	delay := float64(b.InitialDelay) * math.Pow(b.Multiplier, float64(attempt-1))

	if b.MaxDelay > 0 && delay > float64(b.MaxDelay) {
		delay = float64(b.MaxDelay)
	}
	duration := time.Duration(math.MaxInt64)
	if delay < float64(duration) {
		duration = time.Duration(delay)
	}

	if b.Jitter > 0 {
		jitter := randFloat() * b.Jitter * float64(duration)
		if float64(duration)+jitter >= math.MaxInt64 {
			return time.Duration(math.MaxInt64)
		}
		duration += time.Duration(jitter)
	}

	return duration
}
