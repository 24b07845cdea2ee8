package store

import (
	"context"
	"fmt"
	"time"

	"cts/core/database"
	"cts/feature/jobs/models"

	"gorm.io/gorm"
)

// Criteria selects a posting candidate. A candidate matches when any of
// (url and title), (post date and url) or (post date and title) are equal.
type Criteria struct {
	// CompanyKey restricts candidates to one company; empty searches all postings.
	CompanyKey string
	URL        string
	Title      string
	PostDate   time.Time
}

// Store is the persistence boundary of the reconciler. It carries no business logic.
type Store interface {
	// GetCompany returns the company with the given key, or nil if absent.
	GetCompany(ctx context.Context, key string) (*models.Company, error)
	// InsertCompany writes a new company and sets its ID.
	InsertCompany(ctx context.Context, c *models.Company) error
	// UpdateCompany overwrites name, url and facets of the company with c.Key.
	UpdateCompany(ctx context.Context, c *models.Company) error
	// FindPosting returns the lowest-id posting matching the criteria, or nil.
	FindPosting(ctx context.Context, criteria Criteria) (*models.Posting, error)
	// InsertPosting writes a new posting and sets its ID.
	InsertPosting(ctx context.Context, p *models.Posting) error
	// UpdatePosting overwrites every attribute of posting id with p.
	UpdatePosting(ctx context.Context, id uint, p *models.Posting) error
	// AppendChange appends an audit record.
	AppendChange(ctx context.Context, c *models.PostingChange) error
	// CountPostings returns the number of stored postings.
	CountPostings(ctx context.Context) (int64, error)
	// ListCompanies returns all companies ordered by key.
	ListCompanies(ctx context.Context) ([]models.Company, error)
	// ExportRows returns every posting joined with its company, ordered by posting id.
	ExportRows(ctx context.Context) ([]models.ExportRow, error)
}

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

// New creates a GORM backed store.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the company, job_posting and job_posting_change tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// requiredColumns lists the columns every reconcile query depends on.
var requiredColumns = map[string][]string{
	models.Company{}.TableName():       {"id", "key", "name", "url", "remote", "local", "canadian"},
	models.Posting{}.TableName():       {"id", "company_id", "post_date", "removed_date", "title", "url", "remote"},
	models.PostingChange{}.TableName(): {"id", "job_posting_id", "update_at", "old_title", "new_title", "old_url", "new_url"},
}

// VerifySchema reports columns missing from the live schema, keyed by table.
// An empty result means the store is ready for a sync run.
func VerifySchema(db *gorm.DB) (map[string][]string, error) {
	problems := make(map[string][]string)
	for _, table := range []string{models.Company{}.TableName(), models.Posting{}.TableName(), models.PostingChange{}.TableName()} {
		missing, err := database.MissingColumns(db, table, requiredColumns[table])
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			problems[table] = missing
		}
	}
	return problems, nil
}

func (s *GormStore) GetCompany(ctx context.Context, key string) (*models.Company, error) {
	var companies []models.Company
	err := s.db.WithContext(ctx).
		Where("company.key = ?", key).
		Limit(1).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find company %s: %w", key, err)
	}
	if len(companies) == 0 {
		return nil, nil
	}
	return &companies[0], nil
}

func (s *GormStore) InsertCompany(ctx context.Context, c *models.Company) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to insert company %s: %w", c.Key, err)
	}
	return nil
}

func (s *GormStore) UpdateCompany(ctx context.Context, c *models.Company) error {
	// A map keeps false facets in the statement; struct updates skip zero values.
	result := s.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("company.key = ?", c.Key).
		Updates(map[string]any{
			"name":     c.Name,
			"url":      c.URL,
			"remote":   c.Remote,
			"local":    c.Local,
			"canadian": c.Canadian,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update company %s: %w", c.Key, result.Error)
	}
	return nil
}

func (s *GormStore) FindPosting(ctx context.Context, criteria Criteria) (*models.Posting, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Posting{}).
		Select("job_posting.*")

	if criteria.CompanyKey != "" {
		query = query.
			Joins("JOIN company ON company.id = job_posting.company_id").
			Where("company.key = ?", criteria.CompanyKey)
	}

	postDate := criteria.PostDate.UTC()
	var postings []models.Posting
	err := query.
		Where("((job_posting.url = ? AND job_posting.title = ?) OR (job_posting.post_date = ? AND job_posting.url = ?) OR (job_posting.post_date = ? AND job_posting.title = ?))",
			criteria.URL, criteria.Title,
			postDate, criteria.URL,
			postDate, criteria.Title,
		).
		Order("job_posting.id").
		Limit(1).
		Find(&postings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find posting %q: %w", criteria.Title, err)
	}
	if len(postings) == 0 {
		return nil, nil
	}
	return &postings[0], nil
}

func (s *GormStore) InsertPosting(ctx context.Context, p *models.Posting) error {
	if err := s.db.WithContext(ctx).Omit("Company").Create(p).Error; err != nil {
		return fmt.Errorf("failed to insert posting %q: %w", p.Title, err)
	}
	return nil
}

func (s *GormStore) UpdatePosting(ctx context.Context, id uint, p *models.Posting) error {
	result := s.db.WithContext(ctx).
		Model(&models.Posting{}).
		Where("job_posting.id = ?", id).
		Updates(map[string]any{
			"company_id":   p.CompanyID,
			"post_date":    p.PostDate.UTC(),
			"removed_date": p.RemovedDate.UTC(),
			"title":        p.Title,
			"url":          p.URL,
			"remote":       p.Remote,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update posting %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no rows updated for posting %d", id)
	}
	return nil
}

func (s *GormStore) AppendChange(ctx context.Context, c *models.PostingChange) error {
	if err := s.db.WithContext(ctx).Omit("JobPosting").Create(c).Error; err != nil {
		return fmt.Errorf("failed to append change for posting %d: %w", c.JobPostingID, err)
	}
	return nil
}

func (s *GormStore) CountPostings(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Posting{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count postings: %w", err)
	}
	return total, nil
}

func (s *GormStore) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.WithContext(ctx).Order("company.key").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *GormStore) ExportRows(ctx context.Context) ([]models.ExportRow, error) {
	var rows []models.ExportRow
	err := s.db.WithContext(ctx).
		Table("job_posting AS j").
		Select(`c.key AS company_key,
			c.name AS company_name,
			c.remote AS is_company_remote,
			c.local AS is_company_local,
			c.canadian AS is_company_canadian,
			j.post_date AS post_date,
			j.removed_date AS removed_date,
			j.title AS job_title,
			j.url AS job_url,
			j.remote AS is_remote`).
		Joins("JOIN company c ON c.id = j.company_id").
		Order("j.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load export rows: %w", err)
	}
	return rows, nil
}
