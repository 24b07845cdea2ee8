package feed

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "cts/core/errors"
	"cts/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const companiesYAML = `
zeta:
  name: Zeta Labs
  url: https://zeta.example
  local: false
acme:
  name: Acme Corp
  url: https://acme.example
  local: true
`

const jobsYAML = `
- company: acme
  jobs:
    - post_date: 2024-01-10
      jobs:
        - title: Engineer
          link: https://acme.example/jobs/1
          remote: true
        - title: Support
          indeed: 8675309
    - post_date: "2024-01-12T09:30:00Z"
      jobs:
        - title: Designer
          link: https://acme.example/jobs/2
- company: zeta
  jobs: []
`

func TestParseCompanies_KeepsDocumentOrder(t *testing.T) {
	entries, err := ParseCompanies([]byte(companiesYAML))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "zeta", entries[0].Key)
	assert.Equal(t, "Zeta Labs", entries[0].Name)
	assert.False(t, entries[0].Local)

	assert.Equal(t, "acme", entries[1].Key)
	assert.Equal(t, "Acme Corp", entries[1].Name)
	assert.Equal(t, "https://acme.example", entries[1].URL)
	assert.True(t, entries[1].Local)
}

func TestParseCompanies_Invalid(t *testing.T) {
	_, err := ParseCompanies([]byte("- just\n- a list\n"))
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeInvalidFeed))
}

func TestParseCompanies_ScalarKeys(t *testing.T) {
	data := "123:\n  name: Num\n  url: https://num.example\n  local: true\ntrue:\n  name: Truthy\n  url: https://truthy.example\n"

	entries, err := ParseCompanies([]byte(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "123", entries[0].Key)
	assert.Equal(t, Company{Name: "Num", URL: "https://num.example", Local: true}, entries[0].Company)
	assert.Equal(t, "true", entries[1].Key)
	assert.Equal(t, "Truthy", entries[1].Name)
}

func TestParseCompanies_MissingAttributes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"null value", "acme:\n"},
		{"scalar value", "acme: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCompanies([]byte(tt.yaml))
			assert.True(t, apperrors.Is(err, apperrors.ErrTypeInvalidFeed))
			assert.ErrorContains(t, err, "acme")
		})
	}
}

func TestParsePostings_BoardIDsKeptVerbatim(t *testing.T) {
	tests := []struct {
		raw  string
		want BoardID
	}{
		{"00123", "00123"},
		{"0x1f", "0x1f"},
		{"8675309", "8675309"},
		{`"00042"`, "00042"},
		{"'a1b2'", "a1b2"},
		{"1e3", "1e3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			data := "- company: acme\n  jobs:\n    - post_date: 2024-01-10\n      jobs:\n        - title: Support\n          indeed: " + tt.raw + "\n"
			groups, err := ParsePostings([]byte(data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, groups[0].Batches[0].Postings[0].Indeed)
		})
	}
}

func TestParsePostings(t *testing.T) {
	groups, err := ParsePostings([]byte(jobsYAML))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	acme := groups[0]
	assert.Equal(t, "acme", acme.Company)
	require.Len(t, acme.Batches, 2)

	first := acme.Batches[0]
	assert.True(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC).Equal(first.PostDate.Time))
	require.Len(t, first.Postings, 2)
	assert.Equal(t, Posting{Title: "Engineer", Link: "https://acme.example/jobs/1", Remote: true}, first.Postings[0])
	assert.Equal(t, "Support", first.Postings[1].Title)
	assert.Empty(t, first.Postings[1].Link)
	assert.Equal(t, BoardID("8675309"), first.Postings[1].Indeed)

	assert.True(t, time.Date(2024, 1, 12, 9, 30, 0, 0, time.UTC).Equal(acme.Batches[1].PostDate.Time))
	assert.Empty(t, groups[1].Batches)
}

func TestParsePostings_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing company", "- jobs:\n    - post_date: 2024-01-10\n      jobs: []\n"},
		{"missing post date", "- company: acme\n  jobs:\n    - jobs:\n        - title: Engineer\n"},
		{"bad post date", "- company: acme\n  jobs:\n    - post_date: yesterday\n      jobs: []\n"},
		{"not a sequence", "acme: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePostings([]byte(tt.yaml))
			assert.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrTypeInvalidFeed))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-01-10 08:15:00", time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC)},
		{"2024-01-10T08:15:00-03:30", time.Date(2024, 1, 10, 11, 45, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseDate("10/01/2024")
	assert.Error(t, err)
}

func TestLoader_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "companies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(companiesYAML), 0o600))

	loader := NewLoader(nil)
	entries, err := loader.LoadCompanies(context.Background(), path)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = loader.LoadPostings(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeMissingInput))
}

func TestLoader_ObjectStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "feeds", "jobs/2024-01-10.yaml", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(jobsYAML))), nil)
	mockClient.On("GetObject", mock.Anything, "feeds", "missing.yaml", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	loader := NewLoader(mockClient)

	groups, err := loader.LoadPostings(context.Background(), "s3://feeds/jobs/2024-01-10.yaml")
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = loader.LoadPostings(context.Background(), "s3://feeds/missing.yaml")
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeMissingInput))

	mockClient.AssertExpectations(t)
}

func TestLoader_ObjectStorageWithoutClient(t *testing.T) {
	_, err := NewLoader(nil).Read(context.Background(), "s3://feeds/jobs.yaml")
	assert.Error(t, err)
}
