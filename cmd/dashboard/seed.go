package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/deppfellow/invoice-dashboard/internal/database"
	"github.com/deppfellow/invoice-dashboard/internal/lib/utils"
	"github.com/deppfellow/invoice-dashboard/internal/logger"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
	"github.com/deppfellow/invoice-dashboard/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var printSummary bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the placeholder users, customers, invoices and revenue",
		Long: `Creates the placeholder dataset through the regular create operations.
Rows that already exist are skipped, so the command can be run repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.NewLoggerWithService(cfg.Observability, nil)

			db, err := database.New(cfg, &log, nil)
			if err != nil {
				return err
			}
			defer db.Close()

			repos := repository.New(db.Pool, &log)

			summary, err := seed.Run(cmd.Context(), seed.Stores{
				Users:     repos.Users,
				Customers: repos.Customers,
				Invoices:  repos.Invoices,
				Revenue:   repos.Revenue,
			}, &log)
			if err != nil {
				return err
			}

			if printSummary {
				return utils.PrintJSON(os.Stdout, summary)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printSummary, "print", false, "print a JSON summary of created and skipped rows")

	return cmd
}
