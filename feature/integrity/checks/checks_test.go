package checks

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"arcade-catalog/core/database"
	"arcade-catalog/core/storage/mocks"
	"arcade-catalog/feature/export/relational"
	"arcade-catalog/feature/sources"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("name", "int(11)", "NO", "UNI", nil, "") // Expect varchar, give int

	mock.ExpectQuery("SHOW COLUMNS FROM `series`").WillReturnRows(rows)

	report, err := checkModels(db, []any{&relational.Series{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "mysql", report.Dialect)

	tbl := report.Tables["series"]
	assert.Equal(t, "error", tbl.Status)
	require.Len(t, tbl.TypeMismatches, 1)
	assert.Regexp(t, regexp.MustCompile(`name: expected varchar\(255\), got int\(11\)`), tbl.TypeMismatches[0])
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("name", "varchar(255)", "NO", "UNI", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `subcategories`").WillReturnRows(rows)

	report, err := checkModels(db, []any{&relational.Subcategory{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"category_id"}, report.Tables["subcategories"].MissingColumns)
}

func TestCheckSchema_InspectFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `series`").WillReturnError(assert.AnError)

	report, err := checkModels(db, []any{&relational.Series{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["machines"].Status)

	require.NoError(t, relational.ResetSchema(db))
	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
	assert.Len(t, report.Tables, len(relational.Models()))
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, typeMatches("text", "longtext"))
	assert.True(t, typeMatches("varchar(255)", "varchar(255)"))
	assert.True(t, typeMatches("varchar(255)", "character varying"))
	assert.False(t, typeMatches("varchar(64)", "int(11)"))
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("primaryKey;column:id"))
	assert.Equal(t, "name", parseGormColumn("column:name;type:varchar(255)"))
	assert.Equal(t, "varchar(255)", parseGormType("column:name;type:varchar(255)"))
	assert.Equal(t, "", parseGormType("column:id"))
}

func TestCheckSources(t *testing.T) {
	dir := t.TempDir()
	mame := filepath.Join(dir, "MAME 0.261.dat")
	require.NoError(t, os.WriteFile(mame, []byte("<mame/>"), 0o644))

	statuses := CheckSources(map[sources.Kind]string{
		sources.KindMAME:   mame,
		sources.KindCatver: filepath.Join(dir, "catver.ini"),
	})
	require.Len(t, statuses, len(sources.Kinds))
	assert.Equal(t, SourceStatus{Source: sources.KindMAME, Path: mame, Found: true, Size: 7, Required: true}, statuses[0])
	assert.False(t, statuses[1].Found)
	assert.True(t, SourcesReady(statuses))

	assert.False(t, SourcesReady(CheckSources(nil)))
}

func TestCheckPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("Some Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "arcade").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "exports/csv/machines.csv"}
		close(ch)
		client.On("ListObjects", mock.Anything, "arcade", minio.ListObjectsOptions{Prefix: "exports/", Recursive: true}).
			Return((<-chan minio.ObjectInfo)(ch))

		missing, err := CheckPublished(ctx, client, "arcade", "exports", []string{"csv/machines.csv", "csv/roms.csv"})
		require.NoError(t, err)
		assert.Equal(t, []string{"csv/roms.csv"}, missing)
	})

	t.Run("No Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "arcade").Return(false, nil)

		_, err := CheckPublished(ctx, client, "arcade", "", []string{"csv/machines.csv"})
		assert.EqualError(t, err, "bucket arcade does not exist")
	})
}
