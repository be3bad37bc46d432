// SPDX-License-Identifier: MPL-2.0

package python

import (
	"errors"
	"fmt"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// ErrInvalidSpecifier is the sentinel error wrapped by InvalidSpecifierError.
var ErrInvalidSpecifier = errors.New("invalid version specifier")

// operatorPrefixes are the leading characters a PEP 440 clause may start with.
const operatorPrefixes = "=!<>~"

type (
	// SpecifierSet is a comma separated conjunction of PEP 440 clauses such as
	// ">=3.8,<3.13". Pre-release interpreters are matched like final ones.
	// The zero value matches every version.
	SpecifierSet struct {
		clauses []string
		specs   pep440.Specifiers
	}

	// InvalidSpecifierError is returned when a requires-python string cannot be parsed.
	InvalidSpecifierError struct {
		Value  string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("invalid version specifier %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidSpecifier for errors.Is() compatibility.
func (e *InvalidSpecifierError) Unwrap() error { return ErrInvalidSpecifier }

// ParseSpecifierSet parses a requires-python string. "" and "*" yield the
// empty set.
func ParseSpecifierSet(s string) (SpecifierSet, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return SpecifierSet{}, nil
	}

	var clauses []string
	for clause := range strings.SplitSeq(s, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if !strings.ContainsRune(operatorPrefixes, rune(clause[0])) {
			return SpecifierSet{}, &InvalidSpecifierError{Value: clause, Reason: "missing comparison operator"}
		}
		clauses = append(clauses, strings.Join(strings.Fields(clause), ""))
	}
	if len(clauses) == 0 {
		return SpecifierSet{}, nil
	}

	joined := strings.Join(clauses, ",")
	specs, err := pep440.NewSpecifiers(joined, pep440.WithPreRelease(true))
	if err != nil {
		return SpecifierSet{}, &InvalidSpecifierError{Value: s, Reason: err.Error()}
	}
	return SpecifierSet{clauses: clauses, specs: specs}, nil
}

// IsEmpty reports whether the set has no clauses.
func (s SpecifierSet) IsEmpty() bool { return len(s.clauses) == 0 }

// Contains reports whether v satisfies every clause of the set. The unknown
// version satisfies only the empty set.
func (s SpecifierSet) Contains(v Version) bool {
	if s.IsEmpty() {
		return true
	}
	if v.IsZero() {
		return false
	}
	return s.specs.Check(v.pep)
}

// String joins the clauses with commas.
func (s SpecifierSet) String() string {
	return strings.Join(s.clauses, ",")
}
