package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a lookup or delete target does not exist.
// Callers wrap it with context and match with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput reports a malformed request parameter the caller can
// correct locally, such as a negative offset.
var ErrInvalidInput = errors.New("invalid input")

// DuplicateRelationshipError reports that the canonical pair already
// exists. Backends translate the storage engine's uniqueness violation
// into this error so that concurrent creates of the same pair fail
// distinguishably.
type DuplicateRelationshipError struct {
	NameA string
	NameB string
}

func (e *DuplicateRelationshipError) Error() string {
	return fmt.Sprintf("relationship between %s and %s already exists", e.NameA, e.NameB)
}

// UnavailableError reports that the storage engine is unreachable or a
// query failed for infrastructural reasons. The driver error stays
// behind Unwrap for logging; Error never exposes it to callers.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return "storage unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
