package main

import (
	"context"

	"github.com/spf13/cobra"

	"ensgraph/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve-mcp",
		Short: "Start the MCP server over stdio",
		RunE:  runServeMCP,
	}
	return cmd
}

func runServeMCP(cmd *cobra.Command, args []string) error {
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

	server := mcp.NewServer(db, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
