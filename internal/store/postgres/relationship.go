package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

const relationshipColumns = "id, ens_name_1, ens_name_2, created_at, updated_at"

func (c *Client) CreateRelationship(ctx context.Context, canonA, canonB string) (*store.Relationship, error) {
	// Canonicalization happens upstream; the self check is repeated
	// here so a bad caller fails before it reaches the CHECK constraint.
	if canonA == canonB {
		return nil, &ens.SelfRelationshipError{Name: canonA}
	}

	row := c.pool.QueryRow(ctx,
		`INSERT INTO friend_relationships (ens_name_1, ens_name_2)
VALUES ($1, $2)
RETURNING `+relationshipColumns,
		canonA, canonB,
	)

	var rel store.Relationship
	if err := row.Scan(&rel.ID, &rel.NameA, &rel.NameB, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
		return nil, translateInsertError(err, canonA, canonB)
	}
	return &rel, nil
}

func (c *Client) ListRelationships(ctx context.Context, limit, offset int) ([]store.Relationship, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", store.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := c.pool.Query(ctx,
		`SELECT `+relationshipColumns+`
FROM friend_relationships
ORDER BY id
LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, &store.UnavailableError{Err: fmt.Errorf("listing relationships: %w", err)}
	}
	defer rows.Close()

	return scanRelationships(rows)
}

func (c *Client) GetRelationshipsByName(ctx context.Context, name string) ([]store.Relationship, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+relationshipColumns+`
FROM friend_relationships
WHERE ens_name_1 = $1 OR ens_name_2 = $1
ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, &store.UnavailableError{Err: fmt.Errorf("getting relationships by name: %w", err)}
	}
	defer rows.Close()

	rels, err := scanRelationships(rows)
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return nil, fmt.Errorf("no relationships found for %s: %w", name, store.ErrNotFound)
	}
	return rels, nil
}

func (c *Client) DeleteRelationshipByID(ctx context.Context, id int64) (*store.Relationship, error) {
	row := c.pool.QueryRow(ctx,
		`DELETE FROM friend_relationships
WHERE id = $1
RETURNING `+relationshipColumns,
		id,
	)

	var rel store.Relationship
	if err := row.Scan(&rel.ID, &rel.NameA, &rel.NameB, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("relationship with id %d not found: %w", id, store.ErrNotFound)
		}
		return nil, &store.UnavailableError{Err: fmt.Errorf("deleting relationship %d: %w", id, err)}
	}
	return &rel, nil
}

func (c *Client) DeleteRelationshipByNames(ctx context.Context, nameA, nameB string) (*store.Relationship, error) {
	canonA, canonB, err := ens.ValidateAndCanonicalize(nameA, nameB)
	if err != nil {
		return nil, err
	}

	row := c.pool.QueryRow(ctx,
		`DELETE FROM friend_relationships
WHERE ens_name_1 = $1 AND ens_name_2 = $2
RETURNING `+relationshipColumns,
		canonA, canonB,
	)

	var rel store.Relationship
	if err := row.Scan(&rel.ID, &rel.NameA, &rel.NameB, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("relationship between %s and %s not found: %w", nameA, nameB, store.ErrNotFound)
		}
		return nil, &store.UnavailableError{Err: fmt.Errorf("deleting relationship by names: %w", err)}
	}
	return &rel, nil
}

func scanRelationships(rows pgx.Rows) ([]store.Relationship, error) {
	rels := make([]store.Relationship, 0)
	for rows.Next() {
		var rel store.Relationship
		if err := rows.Scan(&rel.ID, &rel.NameA, &rel.NameB, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
			return nil, &store.UnavailableError{Err: fmt.Errorf("scanning relationship: %w", err)}
		}
		rels = append(rels, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Err: fmt.Errorf("iterating relationship rows: %w", err)}
	}
	return rels, nil
}
