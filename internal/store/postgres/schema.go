package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// All DDL runs in one call, which PostgreSQL executes inside an
	// implicit transaction. "IF NOT EXISTS" keeps the step idempotent;
	// this is the only schema management the service carries.
	ddl := `
CREATE TABLE IF NOT EXISTS friend_relationships (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    ens_name_1  TEXT NOT NULL,
    ens_name_2  TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT unique_relationship UNIQUE (ens_name_1, ens_name_2),
    CONSTRAINT no_self_relationship CHECK (ens_name_1 <> ens_name_2)
);

CREATE INDEX IF NOT EXISTS idx_ens_name_1 ON friend_relationships (ens_name_1);
CREATE INDEX IF NOT EXISTS idx_ens_name_2 ON friend_relationships (ens_name_2);
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
