package main

import (
	"os"

	"github.com/spf13/cobra"

	"trackd/internal/interfaces/cli/migrate"
	"trackd/internal/interfaces/cli/server"
	"trackd/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackd",
		Short: "Trackd - a multi-tenant issue tracking backend",
		Long:  `Trackd is an issue tracking service with built-in server, migration tools, and development utilities.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
