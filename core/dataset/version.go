package dataset

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// VersionPolicy orders version strings when resolving the latest version.
type VersionPolicy interface {
	// Less reports whether version a sorts before version b.
	Less(a, b string) bool
}

// VersionPolicyFunc is an adapter to use ordinary function as VersionPolicy
type VersionPolicyFunc func(a, b string) bool

func (f VersionPolicyFunc) Less(a, b string) bool { return f(a, b) }

var (
	// LexicalVersionPolicy compares versions as plain strings, so "2" sorts
	// after "10". It is the default.
	LexicalVersionPolicy VersionPolicy = VersionPolicyFunc(func(a, b string) bool {
		return a < b
	})

	// SemverVersionPolicy compares versions as semantic versions. Versions
	// that do not parse sort before all that do, lexically among themselves.
	SemverVersionPolicy VersionPolicy = VersionPolicyFunc(semverLess)
)

// ParseVersion returns error if version string is not a semantic version
func ParseVersion(v string) (*semver.Version, error) {
	semverVersion, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version \"%s\"", v)
	}
	return semverVersion, nil
}

func semverLess(a, b string) bool {
	va, errA := ParseVersion(a)
	vb, errB := ParseVersion(b)
	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return true
	case errB != nil:
		return false
	default:
		return va.LessThan(vb)
	}
}
