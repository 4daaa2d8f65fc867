package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"arcade-catalog/core/database"
	"arcade-catalog/core/storage/mocks"
	"arcade-catalog/feature/export/relational"
	"arcade-catalog/feature/sources"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(opts Options) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(opts, zap.NewNop())).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleSourcesCheck(t *testing.T) {
	dir := t.TempDir()
	mame := filepath.Join(dir, "MAME 0.261.dat")
	require.NoError(t, os.WriteFile(mame, []byte("<mame/>"), 0o644))

	app := setupTestApp(Options{Sources: map[sources.Kind]string{sources.KindMAME: mame}})
	status, body := decode(t, app, "/integrity/sources")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["ready"])
	assert.Len(t, body["files"], len(sources.Kinds))

	app = setupTestApp(Options{})
	_, body = decode(t, app, "/integrity/sources")
	assert.Equal(t, false, body["ready"])
}

func TestHandleSchemaCheck(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		status, body := decode(t, setupTestApp(Options{}), "/integrity/schema")
		assert.Equal(t, 500, status)
		assert.Equal(t, "database is not configured", body["error"])
	})

	t.Run("SQLite", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, relational.ResetSchema(db))

		status, body := decode(t, setupTestApp(Options{DB: db}), "/integrity/schema")
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["matched"])
		assert.Equal(t, "sqlite", body["dialect"])
	})
}

func TestHandlePublishedCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "arcade").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "arcade", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	app := setupTestApp(Options{Client: client, Bucket: "arcade", Expected: []string{"csv/machines.csv"}})
	status, body := decode(t, app, "/integrity/published")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"csv/machines.csv"}, body["missing"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "arcade").Return(false, assert.AnError)

	app := setupTestApp(Options{Client: client, Bucket: "arcade"})
	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "sources")
	assert.Equal(t, "error", body["schema"].(map[string]any)["status"])
	assert.Equal(t, "error", body["published"].(map[string]any)["status"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(Options{}, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
