package retry //nolint:testpackage

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstBackoff(t *testing.T) {
	cases := []struct {
		b        ConstBackoff
		attempt  int
		expected time.Duration
	}{
		0: {
			b:        ConstBackoff{Delay: 1 * time.Second},
			attempt:  1,
			expected: time.Second,
		},
		1: {
			b:        ConstBackoff{Delay: 350 * time.Millisecond},
			attempt:  10,
			expected: 350 * time.Millisecond,
		},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, tc.b.Backoff(tc.attempt), "test[%d]", i)
	}
}

func TestExponentialBackoff(t *testing.T) {
	randFloat = func() float64 { return 0.5 }

	cases := []struct {
		b        *ExponentialBackoff
		attempt  int
		expected time.Duration
	}{
		0: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Second * 4,
				MaxDelay:     time.Second * 5,
			},
			attempt:  1,
			expected: time.Second * 4,
		},
		1: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Second * 4,
			},
			attempt:  3,
			expected: time.Second * 16,
		},
		2: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Second * 4,
				MaxDelay:     time.Second * 10,
			},
			attempt:  3,
			expected: time.Second * 10,
		},
		3: {
			b: &ExponentialBackoff{
				Multiplier:   1,
				InitialDelay: time.Second * 4,
			},
			attempt:  10,
			expected: time.Second * 4,
		},
		4: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Second * 4,
				Jitter:       0.4,
			},
			attempt:  3,
			expected: time.Second*19 + time.Millisecond*200,
		},
		5: {
			b: &ExponentialBackoff{
				Multiplier:   4,
				InitialDelay: time.Second * 1,
				MaxDelay:     time.Second * 10,
				Jitter:       1,
			},
			attempt:  111,
			expected: time.Second * 15,
		},
		6: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Second,
				Jitter:       0.5,
			},
			attempt:  5000,
			expected: time.Duration(math.MaxInt64),
		},
		7: {
			b: &ExponentialBackoff{
				Multiplier:   2,
				InitialDelay: time.Duration(math.MaxInt64 / 2),
				Jitter:       1,
			},
			attempt:  2,
			expected: time.Duration(math.MaxInt64),
		},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, tc.b.Backoff(tc.attempt), "test[%d]", i)
	}
}
