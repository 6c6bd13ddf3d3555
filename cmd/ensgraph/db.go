package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ensgraph/internal/config"
	"ensgraph/internal/store"
	"ensgraph/internal/store/postgres"
	"ensgraph/internal/store/sqlite"
)

// openStore picks the backend from the DSN scheme.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	dsn := cfg.Database.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	}
	return nil, fmt.Errorf("unsupported database dsn scheme: %s", dsn)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = config.DefaultPath
	}
	return config.Load(path)
}
