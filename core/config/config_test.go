package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "data", cfg.Sources.DataDir)
	assert.Equal(t, "out", cfg.Export.OutputDir)
	assert.True(t, cfg.Export.CSV)
	assert.False(t, cfg.Export.Relational)
	assert.Equal(t, 5000, cfg.Export.BatchSize)
	assert.Equal(t, "all", cfg.Filter.Kinds)
	assert.Equal(t, "exports", cfg.Storage.Prefix)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SOURCES_DATA_DIR=/srv/mame\nEXPORT_GZIP=true\nFILTER_KINDS=bios,device\nDATABASE_DRIVER=postgres\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		for _, k := range []string{"SOURCES_DATA_DIR", "EXPORT_GZIP", "FILTER_KINDS", "DATABASE_DRIVER"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/mame", cfg.Sources.DataDir)
	assert.True(t, cfg.Export.Gzip)
	assert.Equal(t, "postgres", cfg.Database.Driver)

	kinds, err := cfg.Filter.Parsed()
	require.NoError(t, err)
	assert.Len(t, kinds, 2)
}
