// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so feeds can be read from, and CSV exports
// written to, an S3 compatible bucket instead of the local file system.
//
// # Client Interface
//
// The Client interface is the subset of MinIO operations the job board uses,
// which keeps storage interactions mockable (see core/storage/mocks).
//
// # Object URIs
//
// ParseURI recognises "s3://bucket/object" sources. Anything else is treated as a
// local path by callers.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "feeds")
package storage
