package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	apperrors "cts/core/errors"
	"cts/core/storage"
	"cts/core/utils"

	"github.com/goccy/go-yaml"
	"github.com/minio/minio-go/v7"
)

// Loader reads feeds from local files or from object storage ("s3://bucket/object").
type Loader struct {
	client storage.Client
}

// NewLoader creates a loader. client may be nil when only local files are read.
func NewLoader(client storage.Client) *Loader {
	return &Loader{client: client}
}

// Read returns the raw bytes of a feed source.
func (l *Loader) Read(ctx context.Context, source string) ([]byte, error) {
	if bucket, object, ok := storage.ParseURI(source); ok {
		return l.readObject(ctx, source, bucket, object)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.MissingInput("the provided data file does not exist: "+source, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}

func (l *Loader) readObject(ctx context.Context, source, bucket, object string) ([]byte, error) {
	if l.client == nil {
		return nil, fmt.Errorf("no storage client configured to read %s", source)
	}

	reader, err := l.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, apperrors.MissingInput("the provided data file does not exist: "+source, err)
		}
		return nil, apperrors.Storage("failed to get "+source, err)
	}
	defer reader.Close()

	// MinIO reports a missing object on first read.
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, apperrors.MissingInput("the provided data file does not exist: "+source, err)
		}
		return nil, apperrors.Storage("failed to read "+source, err)
	}
	return data, nil
}

// LoadCompanies reads and parses a companies feed.
func (l *Loader) LoadCompanies(ctx context.Context, source string) ([]CompanyEntry, error) {
	data, err := l.Read(ctx, source)
	if err != nil {
		return nil, err
	}
	return ParseCompanies(data)
}

// LoadPostings reads and parses a jobs feed.
func (l *Loader) LoadPostings(ctx context.Context, source string) ([]CompanyPostings, error) {
	data, err := l.Read(ctx, source)
	if err != nil {
		return nil, err
	}
	return ParsePostings(data)
}

// ParseCompanies parses a mapping of company key to attributes, keeping document order.
// Keys may be any scalar; they are stored as text.
func ParseCompanies(data []byte) ([]CompanyEntry, error) {
	var order yaml.MapSlice
	if err := yaml.Unmarshal(data, &order); err != nil {
		return nil, apperrors.InvalidFeed("failed to parse companies feed", err)
	}

	entries := make([]CompanyEntry, 0, len(order))
	for _, item := range order {
		key := utils.ToString(item.Key)
		if key == "" {
			return nil, apperrors.InvalidFeed("company with an empty key", nil)
		}
		company, err := decodeCompany(item.Value)
		if err != nil {
			return nil, apperrors.InvalidFeed("invalid attributes for company "+key, err)
		}
		entries = append(entries, CompanyEntry{Key: key, Company: company})
	}
	return entries, nil
}

// decodeCompany re-encodes one generic mapping value and decodes it as a Company.
func decodeCompany(value any) (Company, error) {
	var company Company
	if value == nil {
		return company, fmt.Errorf("no attributes")
	}
	raw, err := yaml.Marshal(value)
	if err != nil {
		return company, err
	}
	if err := yaml.Unmarshal(raw, &company); err != nil {
		return company, err
	}
	return company, nil
}

// ParsePostings parses a sequence of company posting groups and validates its structure.
func ParsePostings(data []byte) ([]CompanyPostings, error) {
	var groups []CompanyPostings
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, apperrors.InvalidFeed("failed to parse jobs feed", err)
	}

	for i, group := range groups {
		if group.Company == "" {
			return nil, apperrors.InvalidFeed(fmt.Sprintf("posting group %d has no company key", i), nil)
		}
		for j, batch := range group.Batches {
			if batch.PostDate.IsZero() {
				return nil, apperrors.InvalidFeed(fmt.Sprintf("batch %d of %s has no post_date", j, group.Company), nil)
			}
		}
	}
	return groups, nil
}
