package sqlite

import (
	"context"
	"fmt"

	"ensgraph/internal/store"
)

func (c *Client) Seed(ctx context.Context) error {
	for _, pair := range store.SeedRelationships {
		_, err := c.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO friend_relationships (ens_name_1, ens_name_2)
			VALUES (?, ?)`,
			pair[0], pair[1],
		)
		if err != nil {
			return fmt.Errorf("seeding relationship %s-%s: %w", pair[0], pair[1], err)
		}
	}
	return nil
}
