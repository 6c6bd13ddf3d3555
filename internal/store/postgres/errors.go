package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

// PostgreSQL error codes, class 23 (integrity constraint violation).
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// translateInsertError maps a failed relationship insert onto the
// store's error kinds. A unique violation means a concurrent or earlier
// create already persisted the same canonical pair.
func translateInsertError(err error, canonA, canonB string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &store.DuplicateRelationshipError{NameA: canonA, NameB: canonB}
		case codeCheckViolation:
			return &ens.SelfRelationshipError{Name: canonA}
		}
	}
	return &store.UnavailableError{Err: fmt.Errorf("creating relationship: %w", err)}
}
