package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"arcade-catalog/core/storage"
	"arcade-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "csv"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "csv", "machines.csv"), []byte("name\npacman\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "json", "machines.json.gz"), []byte{0x1f, 0x8b}, 0o644))
	return dir
}

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestPublish(t *testing.T) {
	dir := writeExport(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "arcade").Return(true, nil)
	client.On("PutObject", mock.Anything, "arcade", "exports/csv/machines.csv", mock.Anything, int64(12),
		minio.PutObjectOptions{ContentType: "text/csv; charset=utf-8"}).Return(minio.UploadInfo{}, nil)
	client.On("PutObject", mock.Anything, "arcade", "exports/json/machines.json.gz", mock.Anything, int64(2),
		minio.PutObjectOptions{ContentType: "application/gzip"}).Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "arcade", minio.ListObjectsOptions{Prefix: "exports/", Recursive: true}).
		Return(objects(minio.ObjectInfo{Key: "exports/csv/machines.csv"}, minio.ObjectInfo{Key: "exports/csv/genres.csv"}))
	client.On("RemoveObjects", mock.Anything, "arcade", mock.Anything, mock.Anything).Return(nil)

	p := NewPublisher(client, storage.Config{Bucket: "arcade", Prefix: "exports"}, 2, nil)
	report, err := p.Publish(context.Background(), dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"exports/csv/machines.csv", "exports/json/machines.json.gz"}, report.Uploaded)
	assert.Equal(t, []string{"exports/csv/genres.csv"}, report.Removed)
	assert.Equal(t, int64(14), report.Bytes)
	client.AssertExpectations(t)
}

func TestPublish_NothingStale(t *testing.T) {
	dir := writeExport(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "arcade").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "arcade", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "arcade", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "arcade", mock.Anything).Return(objects())

	p := NewPublisher(client, storage.Config{Bucket: "arcade"}, 4, nil)
	report, err := p.Publish(context.Background(), dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"csv/machines.csv", "json/machines.json.gz"}, report.Uploaded)
	assert.Empty(t, report.Removed)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_UploadFails(t *testing.T) {
	dir := writeExport(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "arcade").Return(true, nil)
	client.On("PutObject", mock.Anything, "arcade", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota exceeded"))

	p := NewPublisher(client, storage.Config{Bucket: "arcade"}, 1, nil)
	_, err := p.Publish(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_EmptyDir(t *testing.T) {
	p := NewPublisher(new(mocks.Client), storage.Config{Bucket: "arcade"}, 1, nil)
	_, err := p.Publish(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "nothing to publish")
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "csv/roms.csv", ObjectName("", "csv/roms.csv"))
	assert.Equal(t, "exports/csv/roms.csv", ObjectName("exports", "csv/roms.csv"))
}
