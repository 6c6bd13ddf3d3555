package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

const relationshipColumns = "id, ens_name_1, ens_name_2, created_at, updated_at"

// sqliteTimeLayout matches datetime('now') output, which is UTC.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func (c *Client) CreateRelationship(ctx context.Context, canonA, canonB string) (*store.Relationship, error) {
	if canonA == canonB {
		return nil, &ens.SelfRelationshipError{Name: canonA}
	}

	row := c.db.QueryRowContext(ctx,
		`INSERT INTO friend_relationships (ens_name_1, ens_name_2)
		VALUES (?, ?)
		RETURNING `+relationshipColumns,
		canonA, canonB,
	)

	rel, err := scanRelationship(row)
	if err != nil {
		return nil, translateInsertError(err, canonA, canonB)
	}
	return rel, nil
}

func (c *Client) ListRelationships(ctx context.Context, limit, offset int) ([]store.Relationship, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", store.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT `+relationshipColumns+`
		FROM friend_relationships
		ORDER BY id
		LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, &store.UnavailableError{Err: fmt.Errorf("listing relationships: %w", err)}
	}
	defer rows.Close()

	return scanRelationships(rows)
}

func (c *Client) GetRelationshipsByName(ctx context.Context, name string) ([]store.Relationship, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+relationshipColumns+`
		FROM friend_relationships
		WHERE ens_name_1 = ? OR ens_name_2 = ?
		ORDER BY id`,
		name, name,
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
	row := c.db.QueryRowContext(ctx,
		`DELETE FROM friend_relationships
		WHERE id = ?
		RETURNING `+relationshipColumns,
		id,
	)

	rel, err := scanRelationship(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("relationship with id %d not found: %w", id, store.ErrNotFound)
		}
		return nil, &store.UnavailableError{Err: fmt.Errorf("deleting relationship %d: %w", id, err)}
	}
	return rel, nil
}

func (c *Client) DeleteRelationshipByNames(ctx context.Context, nameA, nameB string) (*store.Relationship, error) {
	canonA, canonB, err := ens.ValidateAndCanonicalize(nameA, nameB)
	if err != nil {
		return nil, err
	}

	row := c.db.QueryRowContext(ctx,
		`DELETE FROM friend_relationships
		WHERE ens_name_1 = ? AND ens_name_2 = ?
		RETURNING `+relationshipColumns,
		canonA, canonB,
	)

	rel, err := scanRelationship(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("relationship between %s and %s not found: %w", nameA, nameB, store.ErrNotFound)
		}
		return nil, &store.UnavailableError{Err: fmt.Errorf("deleting relationship by names: %w", err)}
	}
	return rel, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRelationship(row rowScanner) (*store.Relationship, error) {
	var rel store.Relationship
	var createdAt, updatedAt string
	if err := row.Scan(&rel.ID, &rel.NameA, &rel.NameB, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	rel.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rel.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rel, nil
}

func scanRelationships(rows *sql.Rows) ([]store.Relationship, error) {
	rels := make([]store.Relationship, 0)
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, &store.UnavailableError{Err: fmt.Errorf("scanning relationship: %w", err)}
		}
		rels = append(rels, *rel)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Err: fmt.Errorf("iterating relationship rows: %w", err)}
	}
	return rels, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(sqliteTimeLayout, value, time.UTC)
}
