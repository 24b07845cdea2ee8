package sync

import (
	"context"
	"time"

	apperrors "cts/core/errors"
	"cts/core/reconcile"
	"cts/feature/jobs/feed"
	"cts/feature/jobs/links"
	"cts/feature/jobs/models"
	"cts/feature/jobs/store"

	"go.uber.org/zap"
)

// PostingOptions fixes the per-run parameters of a PostingReconciler.
type PostingOptions struct {
	// Scope is reconcile.ScopeCompany or reconcile.ScopeGlobal.
	Scope string
	// ReferenceDate is the run's maximum feed post date. It stamps change records
	// and derives removal dates on update.
	ReferenceDate time.Time
}

// PostingReconciler matches incoming postings against stored ones and decides
// between insert, update and update with a change record.
type PostingReconciler struct {
	store    store.Store
	resolver *links.Resolver
	logger   *zap.Logger
	opts     PostingOptions
}

// NewPostingReconciler creates a reconciler bound to one run.
func NewPostingReconciler(s store.Store, resolver *links.Resolver, logger *zap.Logger, opts PostingOptions) *PostingReconciler {
	opts.ReferenceDate = opts.ReferenceDate.UTC()
	return &PostingReconciler{
		store:    s,
		resolver: resolver,
		logger:   logger,
		opts:     opts,
	}
}

// Reconcile applies one feed posting dated postDate on behalf of company.
func (r *PostingReconciler) Reconcile(ctx context.Context, company *models.Company, postDate time.Time, posting feed.Posting) (reconcile.Outcome, error) {
	postDate = postDate.UTC()

	link, err := r.resolver.Resolve(posting)
	if err != nil {
		return "", err
	}

	existing, err := r.findExisting(ctx, company, postDate, link, posting.Title)
	if err != nil {
		return "", err
	}

	if existing == nil {
		record := &models.Posting{
			CompanyID:   company.ID,
			PostDate:    postDate,
			RemovedDate: reconcile.RemovalDate(postDate),
			Title:       posting.Title,
			URL:         link,
			Remote:      posting.Remote,
		}
		if err := r.store.InsertPosting(ctx, record); err != nil {
			return "", apperrors.Storage("insert posting", err)
		}
		return reconcile.OutcomeInserted, nil
	}

	outcome := reconcile.OutcomeUpdated
	if existing.Title != posting.Title || existing.URL != link {
		change := &models.PostingChange{
			JobPostingID: existing.ID,
			UpdateAt:     r.opts.ReferenceDate,
			OldTitle:     existing.Title,
			NewTitle:     posting.Title,
			OldURL:       existing.URL,
			NewURL:       link,
		}
		if err := r.store.AppendChange(ctx, change); err != nil {
			return "", apperrors.Storage("append posting change", err)
		}
		outcome = reconcile.OutcomeChanged
	}

	// The stored post date is kept: it records when the posting first appeared.
	update := &models.Posting{
		CompanyID:   company.ID,
		PostDate:    existing.PostDate,
		RemovedDate: reconcile.RemovalDate(r.opts.ReferenceDate),
		Title:       posting.Title,
		URL:         link,
		Remote:      posting.Remote,
	}
	if err := r.store.UpdatePosting(ctx, existing.ID, update); err != nil {
		return "", apperrors.Storage("update posting", err)
	}
	return outcome, nil
}

func (r *PostingReconciler) findExisting(ctx context.Context, company *models.Company, postDate time.Time, link, title string) (*models.Posting, error) {
	criteria := store.Criteria{
		URL:      link,
		Title:    title,
		PostDate: postDate,
	}
	if r.opts.Scope != reconcile.ScopeGlobal {
		criteria.CompanyKey = company.Key
	}

	existing, err := r.store.FindPosting(ctx, criteria)
	if err != nil {
		return nil, apperrors.Storage("find posting", err)
	}

	if existing != nil && existing.PostDate.Equal(postDate) && existing.URL == link && existing.Title != title {
		r.logger.Warn("Possible shared link",
			zap.String("url", link),
			zap.String("stored_title", existing.Title),
			zap.String("title", title),
		)
	}
	return existing, nil
}
