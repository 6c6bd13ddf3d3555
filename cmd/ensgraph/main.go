package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// A missing .env is fine; environment overrides stay optional.
	godotenv.Load()

	root := &cobra.Command{
		Use:   "ensgraph",
		Short: "Friendship graph service for ENS names",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().String("config", "", "Path to config file")
	root.AddCommand(serveCmd())
	root.AddCommand(serveMCPCmd())
	root.AddCommand(initDBCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
