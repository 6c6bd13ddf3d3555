// Package ens validates and canonicalizes pairs of ENS names.
//
// A relationship is an unordered pair of names. The canonical form keeps
// the lexicographically smaller name first so that (a, b) and (b, a)
// collapse into a single representation before they reach storage.
package ens

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9\-.]+$`)

// InvalidNameError reports a name that failed validation.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid ENS name: %s", e.Reason)
	}
	return fmt.Sprintf("invalid ENS name %q: %s", e.Name, e.Reason)
}

// SelfRelationshipError reports a pair whose two names are equal after
// trimming. Equality is case-sensitive.
type SelfRelationshipError struct {
	Name string
}

func (e *SelfRelationshipError) Error() string {
	return fmt.Sprintf("self-relationship is not allowed: %q", e.Name)
}

// ValidateName trims the input and checks it against the allowed
// identifier charset. It returns the trimmed name.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &InvalidNameError{Reason: "name is empty"}
	}
	if !namePattern.MatchString(trimmed) {
		return "", &InvalidNameError{Name: trimmed, Reason: "contains disallowed characters"}
	}
	return trimmed, nil
}

// ValidateAndCanonicalize turns two raw names into a validated canonical
// pair: both names trimmed and charset-checked, distinct, and ordered so
// the lexicographically smaller one comes first. It is pure and
// deterministic; calling it with the arguments swapped yields the same
// pair.
func ValidateAndCanonicalize(nameA, nameB string) (string, string, error) {
	a, err := ValidateName(nameA)
	if err != nil {
		return "", "", err
	}
	b, err := ValidateName(nameB)
	if err != nil {
		return "", "", err
	}
	if a == b {
		return "", "", &SelfRelationshipError{Name: a}
	}
	if a > b {
		a, b = b, a
	}
	return a, b, nil
}
