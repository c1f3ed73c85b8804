package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymdesk/internal/interfaces/cli/migrate"
	"gymdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymdesk",
		Short: "Gymdesk - gym front-desk administration",
		Long:  `Gymdesk manages gym members, plans, memberships, and payments from a single front-desk service.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
