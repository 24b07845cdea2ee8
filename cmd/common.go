package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"cts/core/config"
	"cts/core/database"
	apperrors "cts/core/errors"
	"cts/core/logger"
	"cts/core/storage"
	"cts/feature/jobs"
	"cts/feature/jobs/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// session bundles what every data command needs.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// requireFile fails with a missing input error when path does not exist.
func requireFile(kind, path string) error {
	if _, _, ok := storage.ParseURI(path); ok {
		// Objects are checked when they are read.
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.MissingInput(fmt.Sprintf("%s does not exist: %s", kind, path), nil)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return nil
}

// bootstrap loads configuration, points it at the database argument and opens
// the store. With mustExist set, a file backed database has to be there already.
func bootstrap(databaseArg string, mustExist bool) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if databaseArg != "" {
		cfg.Database.Name = databaseArg
	}
	if !cfg.Reconcile.IsValidScope() {
		return nil, fmt.Errorf("invalid reconcile scope %q", cfg.Reconcile.Scope)
	}
	if !cfg.Reconcile.IsValidLinkVariant() {
		return nil, fmt.Errorf("invalid reconcile link variant %q", cfg.Reconcile.LinkVariant)
	}
	if !cfg.Reconcile.IsValidIndeedTemplate() {
		return nil, fmt.Errorf("invalid reconcile indeed template %q: it needs exactly one %%s", cfg.Reconcile.IndeedTemplate)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if mustExist && cfg.Database.IsFileBacked() {
		if err := requireFile("database", cfg.Database.Name); err != nil {
			return nil, err
		}
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &session{cfg: cfg, logger: l, db: db}, nil
}

// verifySchema rejects stores that were never initialised.
func (r *session) verifySchema() error {
	problems, err := store.VerifySchema(r.db)
	if err != nil {
		return apperrors.Storage("inspect schema", err)
	}
	if len(problems) == 0 {
		return nil
	}
	tables := make([]string, 0, len(problems))
	for table := range problems {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	parts := make([]string, 0, len(tables))
	for _, table := range tables {
		parts = append(parts, table+"("+strings.Join(problems[table], ",")+")")
	}
	return apperrors.Storage("schema is incomplete, run init first: "+strings.Join(parts, " "), nil)
}

// service builds the job board service. The storage client is only created
// when a command needs it.
func (r *session) service(withStorage bool) (*jobs.Service, error) {
	var client storage.Client
	if withStorage {
		c, err := storage.NewClient(r.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}
	return jobs.NewService(store.New(r.db), client, r.cfg.Storage.Bucket, r.cfg.Reconcile, r.logger), nil
}

func (r *session) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.logger.Sync()
}
