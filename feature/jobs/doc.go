// Package jobs is the job board feature.
//
// Service ties the pieces together for the CLI: the feed loader reads YAML from a
// local path or an s3:// object, the sync driver reconciles it against the
// store, and the exporter writes the CSV projection. Feature mounts a read-only
// HTTP API over the same service:
//
//	GET /companies            every company
//	GET /postings             every posting joined with its company
//	GET /postings/export.csv  the CSV export
//
// Subpackages:
//
//   - models: gorm models of the three tables
//   - store: persistence boundary and schema checks
//   - feed: YAML feed parsing and loading
//   - links: canonical posting URL resolution
//   - sync: company and posting reconciliation
//   - export: CSV rendering and upload
package jobs
