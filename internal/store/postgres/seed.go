package postgres

import (
	"context"
	"fmt"

	"ensgraph/internal/store"
)

// Seed inserts the bootstrap triangle. Pairs that already exist are
// left alone, so the call is idempotent.
func (c *Client) Seed(ctx context.Context) error {
	for _, pair := range store.SeedRelationships {
		_, err := c.pool.Exec(ctx,
			`INSERT INTO friend_relationships (ens_name_1, ens_name_2)
VALUES ($1, $2)
ON CONFLICT (ens_name_1, ens_name_2) DO NOTHING`,
			pair[0], pair[1],
		)
		if err != nil {
			return fmt.Errorf("seeding relationship %s-%s: %w", pair[0], pair[1], err)
		}
	}
	return nil
}
