package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "cts/core/errors"
	storagemocks "cts/core/storage/mocks"
	"cts/feature/jobs/models"
	storemocks "cts/feature/jobs/store/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRows() []models.ExportRow {
	return []models.ExportRow{
		{
			CompanyKey:        "acme",
			CompanyName:       "Acme, Inc",
			IsCompanyRemote:   true,
			IsCompanyLocal:    true,
			IsCompanyCanadian: true,
			PostDate:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			RemovedDate:       time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			JobTitle:          "Engineer",
			JobURL:            "https://acme.example/jobs/1",
			IsRemote:          false,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"acme", "Acme, Inc", "true", "true", "true",
		"2024-01-10T00:00:00.000Z", "2024-01-17T00:00:00.000Z",
		"Engineer", "https://acme.example/jobs/1", "false",
	}, records[1])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "CompanyKey,CompanyName,IsCompanyRemote,IsCompanyLocal,IsCompanyCanadian,PostDate,RemovedDate,JobTitle,JobUrl,IsRemote\n", buf.String())
}

func TestExporter_WriteFile(t *testing.T) {
	s := new(storemocks.Store)
	s.On("ExportRows", mock.Anything).Return(sampleRows(), nil)

	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	data, err := NewExporter(s, nil, "feeds", zap.NewNop()).WriteFile(context.Background(), path)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, written)
	assert.NotContains(t, string(written), "stale")
}

func TestExporter_RenderStoreError(t *testing.T) {
	s := new(storemocks.Store)
	s.On("ExportRows", mock.Anything).Return(nil, errors.New("no such table"))

	_, _, err := NewExporter(s, nil, "feeds", zap.NewNop()).Render(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeStorage))
}

func TestExporter_Upload(t *testing.T) {
	ctx := context.Background()
	data := []byte("CompanyKey\n")

	t.Run("existing bucket", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", ctx, "feeds").Return(true, nil)
		client.On("PutObject", ctx, "feeds", "jobs.csv", mock.Anything, int64(len(data)), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
			return o.ContentType == "text/csv"
		})).Return(minio.UploadInfo{}, nil)

		uri, err := NewExporter(nil, client, "feeds", zap.NewNop()).Upload(ctx, "/tmp/out/jobs.csv", data)
		require.NoError(t, err)
		assert.Equal(t, "s3://feeds/jobs.csv", uri)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		client.AssertExpectations(t)
	})

	t.Run("missing bucket is created", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", ctx, "feeds").Return(false, nil)
		client.On("MakeBucket", ctx, "feeds", mock.Anything).Return(nil)
		client.On("PutObject", ctx, "feeds", "jobs.csv", mock.Anything, int64(len(data)), mock.Anything).Return(minio.UploadInfo{}, nil)

		_, err := NewExporter(nil, client, "feeds", zap.NewNop()).Upload(ctx, "jobs.csv", data)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("upload failure", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", ctx, "feeds").Return(true, nil)
		client.On("PutObject", ctx, "feeds", "jobs.csv", mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, errors.New("access denied"))

		_, err := NewExporter(nil, client, "feeds", zap.NewNop()).Upload(ctx, "jobs.csv", data)
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("no client", func(t *testing.T) {
		_, err := NewExporter(nil, nil, "feeds", zap.NewNop()).Upload(ctx, "jobs.csv", data)
		assert.Error(t, err)
	})
}
