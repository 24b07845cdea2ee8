// Package config provides configuration management for the job board reconciler.
//
// It uses Viper to read environment variables, optionally overlaid from a .env
// file, with defaults declared on the section structs through 'default' tags.
//
// # Configuration Structure
//
//   - Server: HTTP API port and API key
//   - Database: driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials for s3:// feeds and CSV uploads
//   - Log: logging level and format
//   - Reconcile: candidate scope, shared link variant, job board template
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Name)
package config
