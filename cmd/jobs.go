package cmd

import (
	"context"

	"cts/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// jobsCmd reconciles the postings feed.
var jobsCmd = &cobra.Command{
	Use:   "jobs <data-file> <database>",
	Short: "Reconcile job postings from a YAML feed",
	Long: `Reads a jobs feed and reconciles every posting against the store:
unknown postings are inserted, known ones are refreshed, and title or URL changes
are recorded in job_posting_change. Postings missing from the feed are kept.

Companies referenced by the feed must have been synced first.

Examples:
  cts jobs jobs.yaml cts.db
  RECONCILE_SCOPE=global cts jobs s3://feeds/jobs.yaml cts.db`,
	Args: cobra.ExactArgs(2),
	RunE: runJobs,
}

func init() {
	RootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
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

	summary, err := svc.SyncPostings(context.Background(), dataFile)
	if err != nil {
		return err
	}

	rt.logger.Info("Jobs done",
		zap.Time("reference_date", summary.ReferenceDate),
		zap.Int("processed", summary.Processed),
		zap.Int64("inserted", summary.Inserted),
		zap.Int("changed", summary.Changed),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int64("total", summary.Total),
	)
	return nil
}
