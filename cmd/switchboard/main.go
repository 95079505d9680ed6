package main

import (
	"os"

	"github.com/spf13/cobra"

	"switchboard/internal/interfaces/cli/createuser"
	"switchboard/internal/interfaces/cli/migrate"
	"switchboard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "switchboard",
		Short: "Switchboard - feature flag management service",
		Long:  `Switchboard is a feature flag management service with a public evaluation API and an authenticated admin surface.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		createuser.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
