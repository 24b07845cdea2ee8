package cmd

import (
	"context"

	"cts/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// companiesCmd upserts the companies feed.
var companiesCmd = &cobra.Command{
	Use:   "companies <data-file> <database>",
	Short: "Insert or update companies from a YAML feed",
	Long: `Reads a companies feed (a mapping of company key to name, url and local)
and upserts every entry by key, in document order.

The data file may be a local path or an s3://bucket/object URI.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompanies,
}

func init() {
	RootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	dataFile, databaseArg := args[0], args[1]
	if err := requireFile("data file", dataFile); err != nil {
		return err
	}

	rt, err := bootstrap(databaseArg, true)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.verifySchema(); err != nil {
		return err
	}

	_, _, remote := storage.ParseURI(dataFile)
	svc, err := rt.service(remote)
	if err != nil {
		return err
	}

	summary, err := svc.SyncCompanies(context.Background(), dataFile)
	if err != nil {
		return err
	}

	rt.logger.Info("Companies done",
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
	)
	return nil
}
