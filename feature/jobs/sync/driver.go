package sync

import (
	"context"
	"time"

	apperrors "cts/core/errors"
	"cts/core/reconcile"
	"cts/feature/jobs/feed"
	"cts/feature/jobs/links"
	"cts/feature/jobs/store"

	"go.uber.org/zap"
)

// Driver orchestrates full sync runs over a store.
type Driver struct {
	store    store.Store
	cfg      reconcile.Config
	resolver *links.Resolver
	logger   *zap.Logger
}

// NewDriver creates a driver. The link resolver is built from cfg and reset
// at the start of every posting run.
func NewDriver(s store.Store, cfg reconcile.Config, logger *zap.Logger) *Driver {
	return &Driver{
		store:    s,
		cfg:      cfg,
		resolver: links.NewResolver(links.OptionsFromConfig(cfg)),
		logger:   logger,
	}
}

// ReferenceDate returns the maximum post date across every batch of the feed,
// or reconcile.EpochFloor when the feed has no later date.
func ReferenceDate(groups []feed.CompanyPostings) (ref time.Time) {
	ref = reconcile.EpochFloor
	for _, group := range groups {
		for _, batch := range group.Batches {
			if batch.PostDate.After(ref) {
				ref = batch.PostDate.UTC()
			}
		}
	}
	return ref
}

// SyncCompanies upserts every company of the feed in document order.
func (d *Driver) SyncCompanies(ctx context.Context, companies []feed.CompanyEntry) (reconcile.CompanySummary, error) {
	var summary reconcile.CompanySummary
	reconciler := NewCompanyReconciler(d.store, d.logger)

	for _, entry := range companies {
		outcome, err := reconciler.Reconcile(ctx, entry.Key, entry.Company)
		if err != nil {
			return summary, err
		}
		summary.Record(outcome)
	}

	d.logger.Info("Companies synced",
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
	)
	return summary, nil
}

// SyncPostings reconciles every posting of the feed, in feed order, against the store.
// Writes already applied are kept when the run fails part way.
func (d *Driver) SyncPostings(ctx context.Context, groups []feed.CompanyPostings) (*reconcile.Summary, error) {
	ref := ReferenceDate(groups)
	summary := &reconcile.Summary{ReferenceDate: ref}

	d.logger.Info("Updating posts", zap.Time("reference_date", ref))
	d.resolver.Reset(ref)

	startCount, err := d.store.CountPostings(ctx)
	if err != nil {
		return summary, apperrors.Storage("count postings", err)
	}

	postings := NewPostingReconciler(d.store, d.resolver, d.logger, PostingOptions{
		Scope:         d.cfg.Scope,
		ReferenceDate: ref,
	})

	for _, group := range groups {
		company, err := d.store.GetCompany(ctx, group.Company)
		if err != nil {
			return summary, apperrors.Storage("lookup company "+group.Company, err)
		}
		if company == nil {
			return summary, apperrors.UnresolvedCompany("no company record for: "+group.Company, nil)
		}

		for _, batch := range group.Batches {
			for _, posting := range batch.Postings {
				outcome, err := postings.Reconcile(ctx, company, batch.PostDate.Time, posting)
				if err != nil {
					if d.cfg.SkipUnresolvable && apperrors.Is(err, apperrors.ErrTypeUnresolvableLink) {
						d.logger.Warn("Skipping posting without link",
							zap.String("company", group.Company),
							zap.String("title", posting.Title),
						)
						summary.Record(reconcile.OutcomeSkipped)
						continue
					}
					return summary, err
				}
				summary.Record(outcome)
			}
		}
	}

	endCount, err := d.store.CountPostings(ctx)
	if err != nil {
		return summary, apperrors.Storage("count postings", err)
	}
	summary.Inserted = endCount - startCount
	summary.Total = endCount

	d.logger.Sugar().Infof("%d postings updated. %d added for a total of %d", summary.Changed, summary.Inserted, summary.Total)
	return summary, nil
}
