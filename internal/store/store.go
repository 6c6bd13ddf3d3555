// Package store defines the relationship store interface and the error
// kinds its backends report. Backends live in the postgres and sqlite
// subpackages.
package store

import (
	"context"
)

// DefaultListLimit applies when a caller passes a non-positive limit to
// ListRelationships.
const DefaultListLimit = 100

// Store is the persistence boundary for the friendship graph. Create
// expects a pair already canonicalized by ens.ValidateAndCanonicalize;
// DeleteRelationshipByNames canonicalizes its own inputs. Uniqueness of
// the canonical pair and rejection of self-loops are enforced by the
// storage engine, not by check-then-insert.
type Store interface {
	Close(ctx context.Context) error
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Seed(ctx context.Context) error

	CreateRelationship(ctx context.Context, canonA, canonB string) (*Relationship, error)
	ListRelationships(ctx context.Context, limit, offset int) ([]Relationship, error)
	GetRelationshipsByName(ctx context.Context, name string) ([]Relationship, error)
	DeleteRelationshipByID(ctx context.Context, id int64) (*Relationship, error)
	DeleteRelationshipByNames(ctx context.Context, nameA, nameB string) (*Relationship, error)
}
