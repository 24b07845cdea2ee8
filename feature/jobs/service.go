package jobs

import (
	"context"

	"cts/core/reconcile"
	"cts/core/storage"
	"cts/feature/jobs/export"
	"cts/feature/jobs/feed"
	"cts/feature/jobs/models"
	"cts/feature/jobs/store"
	jobsync "cts/feature/jobs/sync"

	"go.uber.org/zap"
)

// Service wires the feed loader, the sync driver and the exporter over one store.
type Service struct {
	store    store.Store
	loader   *feed.Loader
	driver   *jobsync.Driver
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewService creates a job board service. client may be nil; it is only needed
// for s3:// feed sources and export uploads.
func NewService(s store.Store, client storage.Client, bucket string, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		store:    s,
		loader:   feed.NewLoader(client),
		driver:   jobsync.NewDriver(s, cfg, logger),
		exporter: export.NewExporter(s, client, bucket, logger),
		logger:   logger,
	}
}

// SyncCompanies loads a companies feed and upserts every entry.
func (s *Service) SyncCompanies(ctx context.Context, source string) (reconcile.CompanySummary, error) {
	entries, err := s.loader.LoadCompanies(ctx, source)
	if err != nil {
		return reconcile.CompanySummary{}, err
	}
	s.logger.Info("Loaded companies feed", zap.String("source", source), zap.Int("companies", len(entries)))
	return s.driver.SyncCompanies(ctx, entries)
}

// SyncPostings loads a jobs feed and reconciles every posting.
func (s *Service) SyncPostings(ctx context.Context, source string) (*reconcile.Summary, error) {
	groups, err := s.loader.LoadPostings(ctx, source)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Loaded jobs feed", zap.String("source", source), zap.Int("companies", len(groups)))
	return s.driver.SyncPostings(ctx, groups)
}

// Export writes the CSV export to path and, when upload is set, publishes it
// to the storage bucket. It returns the object URI of the upload, if any.
func (s *Service) Export(ctx context.Context, path string, upload bool) (string, error) {
	data, err := s.exporter.WriteFile(ctx, path)
	if err != nil {
		return "", err
	}
	if !upload {
		return "", nil
	}
	return s.exporter.Upload(ctx, path, data)
}

// Companies lists every stored company.
func (s *Service) Companies(ctx context.Context) ([]models.Company, error) {
	return s.store.ListCompanies(ctx)
}

// Postings lists every stored posting flattened with its company.
func (s *Service) Postings(ctx context.Context) ([]models.ExportRow, error) {
	return s.store.ExportRows(ctx)
}

// RenderCSV returns the CSV export without touching the filesystem.
func (s *Service) RenderCSV(ctx context.Context) ([]byte, error) {
	data, _, err := s.exporter.Render(ctx)
	return data, err
}
