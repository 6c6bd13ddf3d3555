//go:build integration

package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("ENSGRAPH_TEST_DSN")
	if dsn == "" {
		t.Skip("ENSGRAPH_TEST_DSN not set")
	}

	client, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { client.Close(ctx) })

	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	clearRelationships(t, client)
	return client
}

func clearRelationships(t *testing.T, client *Client) {
	t.Helper()
	if _, err := client.pool.Exec(context.Background(), "DELETE FROM friend_relationships"); err != nil {
		t.Fatalf("clearing relationships: %v", err)
	}
}

func TestCreateRelationship(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)

	rel, err := client.CreateRelationship(ctx, "nick.eth", "vitalik.eth")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rel.ID == 0 || rel.NameA != "nick.eth" || rel.NameB != "vitalik.eth" {
		t.Fatalf("unexpected row: %+v", rel)
	}
	if rel.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	_, err = client.CreateRelationship(ctx, "nick.eth", "vitalik.eth")
	var dupErr *store.DuplicateRelationshipError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateRelationshipError, got %v", err)
	}

	_, err = client.CreateRelationship(ctx, "nick.eth", "nick.eth")
	var selfErr *ens.SelfRelationshipError
	if !errors.As(err, &selfErr) {
		t.Fatalf("expected SelfRelationshipError, got %v", err)
	}
}

func TestCreateRelationship_Concurrent(t *testing.T) {
	client := testClient(t)

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.CreateRelationship(context.Background(), "nick.eth", "vitalik.eth")
		}(i)
	}
	wg.Wait()

	var created, duplicates int
	for i, err := range errs {
		switch {
		case err == nil:
			created++
		default:
			var dupErr *store.DuplicateRelationshipError
			if !errors.As(err, &dupErr) {
				t.Fatalf("call %d: expected DuplicateRelationshipError, got %v", i, err)
			}
			duplicates++
		}
	}
	if created != 1 || duplicates != n-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d and %d", n-1, created, duplicates)
	}

	rels, err := client.ListRelationships(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rels) != 1 {
		t.Fatalf("expected exactly 1 persisted row, got %d", len(rels))
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)

	created, err := client.CreateRelationship(ctx, "nick.eth", "vitalik.eth")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, name := range []string{"nick.eth", "vitalik.eth"} {
		rels, err := client.GetRelationshipsByName(ctx, name)
		if err != nil {
			t.Fatalf("get by %s: %v", name, err)
		}
		if len(rels) != 1 || rels[0].ID != created.ID {
			t.Fatalf("expected created row for %s, got %+v", name, rels)
		}
	}

	if _, err := client.DeleteRelationshipByID(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, name := range []string{"nick.eth", "vitalik.eth"} {
		if _, err := client.GetRelationshipsByName(ctx, name); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %s, got %v", name, err)
		}
	}
}

func TestDeleteRelationshipByNames(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)

	if _, err := client.CreateRelationship(ctx, "nick.eth", "vitalik.eth"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := client.DeleteRelationshipByNames(ctx, "vitalik.eth", "nick.eth"); err != nil {
		t.Fatalf("delete by names: %v", err)
	}
	if _, err := client.DeleteRelationshipByNames(ctx, "vitalik.eth", "nick.eth"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)

	if err := client.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := client.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	rels, err := client.ListRelationships(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rels) != 3 {
		t.Fatalf("expected seed triangle of 3 rows, got %d", len(rels))
	}
}
