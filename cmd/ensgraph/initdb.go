package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func initDBCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Also insert the bootstrap test data")
	return cmd
}

func runInitDB(cmd *cobra.Command, seed bool) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Database schema ready.")

	if seed {
		if err := db.Seed(ctx); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Seed data inserted.")
	}
	return nil
}
