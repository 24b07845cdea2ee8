package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadExport bool

// csvCmd exports the postings table.
var csvCmd = &cobra.Command{
	Use:   "csv <database> <csv-file>",
	Short: "Export every posting with its company as CSV",
	Long: `Writes one row per posting, joined with its company, to the given file.
The file is replaced when it exists. With --upload the export is also stored in
the configured storage bucket under the file's base name.`,
	Args: cobra.ExactArgs(2),
	RunE: runCSV,
}

func init() {
	csvCmd.Flags().BoolVar(&uploadExport, "upload", false, "Upload the export to the storage bucket")
	RootCmd.AddCommand(csvCmd)
}

func runCSV(cmd *cobra.Command, args []string) error {
	databaseArg, csvFile := args[0], args[1]

	rt, err := bootstrap(databaseArg, true)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.verifySchema(); err != nil {
		return err
	}

	svc, err := rt.service(uploadExport)
	if err != nil {
		return err
	}

	uri, err := svc.Export(context.Background(), csvFile, uploadExport)
	if err != nil {
		return err
	}
	if uri != "" {
		rt.logger.Info("Export published", zap.String("uri", uri))
	}
	return nil
}
