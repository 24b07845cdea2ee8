package sync

import (
	"context"

	apperrors "cts/core/errors"
	"cts/core/reconcile"
	"cts/feature/jobs/feed"
	"cts/feature/jobs/models"
	"cts/feature/jobs/store"

	"go.uber.org/zap"
)

// CompanyReconciler upserts companies by key. Company history is not audited.
type CompanyReconciler struct {
	store  store.Store
	logger *zap.Logger
}

// NewCompanyReconciler creates a company reconciler.
func NewCompanyReconciler(s store.Store, logger *zap.Logger) *CompanyReconciler {
	return &CompanyReconciler{store: s, logger: logger}
}

// Reconcile inserts the company when its key is unknown and otherwise replaces
// name, url and facets. It performs exactly one write.
func (r *CompanyReconciler) Reconcile(ctx context.Context, key string, data feed.Company) (reconcile.Outcome, error) {
	existing, err := r.store.GetCompany(ctx, key)
	if err != nil {
		return "", apperrors.Storage("lookup company "+key, err)
	}

	company := companyFromFeed(key, data)

	if existing != nil {
		r.logger.Info("Updating", zap.String("company", key))
		if err := r.store.UpdateCompany(ctx, company); err != nil {
			return "", apperrors.Storage("update company "+key, err)
		}
		return reconcile.OutcomeUpdated, nil
	}

	r.logger.Info("Inserting", zap.String("company", key))
	if err := r.store.InsertCompany(ctx, company); err != nil {
		return "", apperrors.Storage("insert company "+key, err)
	}
	return reconcile.OutcomeInserted, nil
}

// companyFromFeed maps feed attributes to a record. The feed has a single
// "local" flag and it sets all three facets.
func companyFromFeed(key string, data feed.Company) *models.Company {
	return &models.Company{
		Key:      key,
		Name:     data.Name,
		URL:      data.URL,
		Remote:   data.Local,
		Local:    data.Local,
		Canadian: data.Local,
	}
}
