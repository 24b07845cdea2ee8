package cmd

import (
	"context"
	"fmt"

	"cts/feature/jobs/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initCmd creates the schema of a new store.
var initCmd = &cobra.Command{
	Use:   "init <database>",
	Short: "Create the company, job_posting and job_posting_change tables",
	Long: `Creates or upgrades the store schema and checks that every column the
sync commands rely on is present. Running it against an initialised store is safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap(args[0], false)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := store.Migrate(context.Background(), rt.db); err != nil {
		return err
	}
	if err := rt.verifySchema(); err != nil {
		return fmt.Errorf("schema verification failed after migration: %w", err)
	}

	rt.logger.Info("Store initialised",
		zap.String("driver", rt.cfg.Database.Driver),
		zap.String("database", rt.cfg.Database.Name),
	)
	return nil
}
