package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Invoice dashboard API",
		Long: `Runs the invoice dashboard API and its maintenance tasks.

Configuration is read from DASHBOARD_* environment variables and an optional
.env file, e.g. DASHBOARD_DATABASE.URL and DASHBOARD_DATABASE.SERVERLESS.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())

	return rootCmd
}
