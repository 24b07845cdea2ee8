package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "cts/core/errors"
	"cts/core/storage"
	"cts/core/utils"
	"cts/feature/jobs/models"
	"cts/feature/jobs/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Header is the fixed column order of the postings export.
var Header = []string{
	"CompanyKey",
	"CompanyName",
	"IsCompanyRemote",
	"IsCompanyLocal",
	"IsCompanyCanadian",
	"PostDate",
	"RemovedDate",
	"JobTitle",
	"JobUrl",
	"IsRemote",
}

// Record formats one export row in header order.
func Record(row models.ExportRow) []string {
	return []string{
		row.CompanyKey,
		row.CompanyName,
		utils.FormatBool(row.IsCompanyRemote),
		utils.FormatBool(row.IsCompanyLocal),
		utils.FormatBool(row.IsCompanyCanadian),
		utils.FormatTimestamp(row.PostDate),
		utils.FormatTimestamp(row.RemovedDate),
		row.JobTitle,
		row.JobURL,
		utils.FormatBool(row.IsRemote),
	}
}

// WriteCSV writes the header followed by one record per row.
func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(Record(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Exporter renders the posting table as CSV and optionally publishes it.
type Exporter struct {
	store  store.Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewExporter creates an exporter. client may be nil when uploads are not used.
func NewExporter(s store.Store, client storage.Client, bucket string, logger *zap.Logger) *Exporter {
	return &Exporter{
		store:  s,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Render returns the full export as CSV bytes and the number of rows.
func (e *Exporter) Render(ctx context.Context) ([]byte, int, error) {
	rows, err := e.store.ExportRows(ctx)
	if err != nil {
		return nil, 0, apperrors.Storage("read export rows", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, 0, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), len(rows), nil
}

// WriteFile writes the export to path, replacing any previous content.
func (e *Exporter) WriteFile(ctx context.Context, path string) ([]byte, error) {
	data, count, err := e.Render(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.logger.Info("Export written", zap.String("file", path), zap.Int("rows", count))
	return data, nil
}

// Upload stores data in the configured bucket under the base name of path,
// creating the bucket when it does not exist yet.
func (e *Exporter) Upload(ctx context.Context, path string, data []byte) (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("storage client is not configured")
	}

	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", e.bucket, err)
		}
		e.logger.Info("Created bucket", zap.String("bucket", e.bucket))
	}

	object := filepath.Base(path)
	_, err = e.client.PutObject(ctx, e.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", object, err)
	}

	uri := "s3://" + e.bucket + "/" + object
	e.logger.Info("Export uploaded", zap.String("uri", uri))
	return uri, nil
}
