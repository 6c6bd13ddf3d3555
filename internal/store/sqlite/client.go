// Package sqlite implements the relationship store on SQLite through
// database/sql and the cgo-free modernc driver. It mirrors the postgres
// backend's semantics; constraint violations are recognized from the
// driver's error text.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ensgraph/internal/store"

	_ "modernc.org/sqlite"
)

var _ store.Store = (*Client)(nil)

// Pragmas ride on the driver DSN so they reach every pooled connection.
// Executing PRAGMA statements through db.Exec would only configure the
// one connection that happened to run them, leaving the rest of the pool
// with busy_timeout 0 and concurrent writes failing with SQLITE_BUSY.
const pragmaParams = "_pragma=busy_timeout(30000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

type Client struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Client, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	sep := "?"
	if strings.Contains(driverDSN, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", driverDSN+sep+pragmaParams)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return &store.UnavailableError{Err: fmt.Errorf("pinging sqlite: %w", err)}
	}
	return nil
}
