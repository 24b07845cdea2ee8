package models

import "time"

// Company is an employer, identified by its feed key.
type Company struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Key      string `gorm:"column:key;type:varchar(191);uniqueIndex;not null" json:"key"`
	Name     string `gorm:"column:name;not null" json:"name"`
	URL      string `gorm:"column:url;not null" json:"url"`
	Remote   bool   `gorm:"column:remote;not null" json:"remote"`
	Local    bool   `gorm:"column:local" json:"local"`
	Canadian bool   `gorm:"column:canadian" json:"canadian"`
}

// TableName overrides the table name.
func (Company) TableName() string {
	return "company"
}

// Posting is a job posting owned by exactly one company.
// It has no identity in the feed; each run re-derives it by matching.
type Posting struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	CompanyID   uint      `gorm:"column:company_id;not null;index" json:"company_id"`
	Company     *Company  `gorm:"foreignKey:CompanyID" json:"-"`
	PostDate    time.Time `gorm:"column:post_date;not null" json:"post_date"`
	RemovedDate time.Time `gorm:"column:removed_date;not null" json:"removed_date"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	URL         string    `gorm:"column:url;not null" json:"url"`
	Remote      bool      `gorm:"column:remote;not null" json:"remote"`
}

// TableName overrides the table name.
func (Posting) TableName() string {
	return "job_posting"
}

// PostingChange is an append-only record of a title or URL transition.
type PostingChange struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	JobPostingID uint      `gorm:"column:job_posting_id;not null;index" json:"job_posting_id"`
	JobPosting   *Posting  `gorm:"foreignKey:JobPostingID" json:"-"`
	UpdateAt     time.Time `gorm:"column:update_at;not null" json:"update_at"`
	OldTitle     string    `gorm:"column:old_title;not null" json:"old_title"`
	NewTitle     string    `gorm:"column:new_title;not null" json:"new_title"`
	OldURL       string    `gorm:"column:old_url;not null" json:"old_url"`
	NewURL       string    `gorm:"column:new_url;not null" json:"new_url"`
}

// TableName overrides the table name.
func (PostingChange) TableName() string {
	return "job_posting_change"
}

// ExportRow is one posting flattened with all of its company's facets.
type ExportRow struct {
	CompanyKey        string    `gorm:"column:company_key" json:"company_key"`
	CompanyName       string    `gorm:"column:company_name" json:"company_name"`
	IsCompanyRemote   bool      `gorm:"column:is_company_remote" json:"is_company_remote"`
	IsCompanyLocal    bool      `gorm:"column:is_company_local" json:"is_company_local"`
	IsCompanyCanadian bool      `gorm:"column:is_company_canadian" json:"is_company_canadian"`
	PostDate          time.Time `gorm:"column:post_date" json:"post_date"`
	RemovedDate       time.Time `gorm:"column:removed_date" json:"removed_date"`
	JobTitle          string    `gorm:"column:job_title" json:"job_title"`
	JobURL            string    `gorm:"column:job_url" json:"job_url"`
	IsRemote          bool      `gorm:"column:is_remote" json:"is_remote"`
}

// All returns the persisted models in dependency order, for migration.
func All() []any {
	return []any{&Company{}, &Posting{}, &PostingChange{}}
}
