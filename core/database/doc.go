// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a SQLite file (the default, one file per job board)
// or a MySQL server based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver and pings it before returning. SQLite
// connections enable foreign key enforcement and use a single pooled connection.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live column list of a table. The
// init command uses them to verify that migration produced the expected schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "job_posting", []string{"url", "title"})
package database
