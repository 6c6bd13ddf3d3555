package sqlite

import (
	"fmt"
	"strings"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

// The modernc driver reports constraint failures through the error
// text, e.g. "constraint failed: UNIQUE constraint failed:
// friend_relationships.ens_name_1, friend_relationships.ens_name_2".
func translateInsertError(err error, canonA, canonB string) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &store.DuplicateRelationshipError{NameA: canonA, NameB: canonB}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &ens.SelfRelationshipError{Name: canonA}
	}
	return &store.UnavailableError{Err: fmt.Errorf("creating relationship: %w", err)}
}
