package dataset_test

import (
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/stretchr/testify/assert"
)

func TestParseVersionSemver(t *testing.T) {
	t.Run("parse invalid version will return non nil error", func(t *testing.T) {
		sv, err := dataset.ParseVersion("xx")
		assert.Error(t, err)
		assert.Nil(t, sv)
	})

	t.Run("parse valid version with prefix 'v' will return nil error", func(t *testing.T) {
		sv, err := dataset.ParseVersion("v1.2")
		assert.Nil(t, err)
		assert.Equal(t, uint64(1), sv.Major())
		assert.Equal(t, uint64(2), sv.Minor())
	})
}

func TestVersionPolicies(t *testing.T) {
	cases := []struct {
		policy   dataset.VersionPolicy
		a, b     string
		expected bool
	}{
		0: {policy: dataset.LexicalVersionPolicy, a: "10", b: "2", expected: true},
		1: {policy: dataset.LexicalVersionPolicy, a: "2", b: "10", expected: false},
		2: {policy: dataset.SemverVersionPolicy, a: "2", b: "10", expected: true},
		3: {policy: dataset.SemverVersionPolicy, a: "1.10.0", b: "1.9.0", expected: false},
		4: {policy: dataset.SemverVersionPolicy, a: "latest", b: "0.0.1", expected: true},
		5: {policy: dataset.SemverVersionPolicy, a: "0.0.1", b: "latest", expected: false},
		6: {policy: dataset.SemverVersionPolicy, a: "alpha", b: "beta", expected: true},
		7: {policy: dataset.SemverVersionPolicy, a: "1.0.0-rc1", b: "1.0.0", expected: true},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, tc.policy.Less(tc.a, tc.b), "test[%d]", i)
	}
}
