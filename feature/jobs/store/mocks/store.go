package mocks

import (
	"context"

	"cts/feature/jobs/models"
	"cts/feature/jobs/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) GetCompany(ctx context.Context, key string) (*models.Company, error) {
	args := m.Called(ctx, key)
	if c, ok := args.Get(0).(*models.Company); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) InsertCompany(ctx context.Context, c *models.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *Store) UpdateCompany(ctx context.Context, c *models.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *Store) FindPosting(ctx context.Context, criteria store.Criteria) (*models.Posting, error) {
	args := m.Called(ctx, criteria)
	if p, ok := args.Get(0).(*models.Posting); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) InsertPosting(ctx context.Context, p *models.Posting) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *Store) UpdatePosting(ctx context.Context, id uint, p *models.Posting) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *Store) AppendChange(ctx context.Context, c *models.PostingChange) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *Store) CountPostings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]models.Company); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ExportRows(ctx context.Context) ([]models.ExportRow, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).([]models.ExportRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
