// SPDX-License-Identifier: MPL-2.0

package python

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid python version")

type (
	// Version is a PEP 440 version such as 3.11.2 or 3.13.0rc1.
	// Comparison pads the shorter release with zeros, so 3.11 == 3.11.0, and
	// a pre-release sorts before its final release.
	// The zero value is the unknown version; it sorts before every parsed one.
	Version struct {
		raw     string
		release []int
		pep     pep440.Version
	}

	// InvalidVersionError is returned when a version string is not a PEP 440 version.
	InvalidVersionError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid python version %q", e.Value)
}

// Unwrap returns ErrInvalidVersion for errors.Is() compatibility.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// ParseVersion parses a PEP 440 version. Pre-release, post-release and local
// parts are kept: "3.13.0rc1" sorts before "3.13.0".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, &InvalidVersionError{Value: s}
	}

	pv, err := pep440.Parse(raw)
	if err != nil {
		return Version{}, &InvalidVersionError{Value: s}
	}
	release := releaseSegments(raw)
	if len(release) == 0 {
		return Version{}, &InvalidVersionError{Value: s}
	}
	return Version{raw: raw, release: release, pep: pv}, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for tests
// and package-level constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v is the unknown version.
func (v Version) IsZero() bool { return v.raw == "" }

// Release returns a copy of the numeric release segments, e.g. [3 13 0] for 3.13.0rc1.
func (v Version) Release() []int { return append([]int(nil), v.release...) }

// Major returns the first release segment.
func (v Version) Major() int { return v.segment(0) }

// Minor returns the second release segment, or 0 when absent.
func (v Version) Minor() int { return v.segment(1) }

// Patch returns the third release segment, or 0 when absent.
func (v Version) Patch() int { return v.segment(2) }

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or
// after other.
func (v Version) Compare(other Version) int {
	switch {
	case v.IsZero() && other.IsZero():
		return 0
	case v.IsZero():
		return -1
	case other.IsZero():
		return 1
	}
	return v.pep.Compare(other.pep)
}

// HasPrefix reports whether the leading release segments of v equal those of
// prefix. 3.11.2 has prefix 3.11 and 3, but not 3.1.
func (v Version) HasPrefix(prefix Version) bool {
	if prefix.IsZero() || len(prefix.release) > len(v.release) {
		return false
	}
	for i, p := range prefix.release {
		if v.release[i] != p {
			return false
		}
	}
	return true
}

// String returns the version as parsed, without a leading "v".
func (v Version) String() string { return v.raw }

func (v Version) segment(i int) int {
	if i < len(v.release) {
		return v.release[i]
	}
	return 0
}

// releaseSegments reads the dotted numbers after an optional epoch and stops
// at the first suffix such as "rc1" or "+local".
func releaseSegments(raw string) []int {
	if _, rest, ok := strings.Cut(raw, "!"); ok {
		raw = rest
	}
	var out []int
	for seg := range strings.SplitSeq(raw, ".") {
		digits := leadingDigits(seg)
		if digits == "" {
			break
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil
		}
		out = append(out, n)
		if len(digits) != len(seg) {
			break
		}
	}
	return out
}

func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
