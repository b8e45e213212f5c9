package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/avherb/herbdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "herbdb"),
		},
		{
			msg: "documents dir",
			fn:  config.DocumentsDir,
			res: filepath.Join(
				tempHome, ".local", "share", "herbdb", "documents"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "herbdb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "herbarium", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		assert.Equal(t, "plants", cfg.Import.Category)
		assert.Empty(t, cfg.Import.DocumentsDir)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptImportCategory("mammals"),
		config.OptJobsNumber(4),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "mammals", cfg.Import.Category)
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		msg string
		opt config.Option
	}{
		{"empty host", config.OptDatabaseHost("")},
		{"zero port", config.OptDatabasePort(0)},
		{"negative jobs", config.OptJobsNumber(-1)},
		{"bad ssl mode", config.OptDatabaseSSLMode("maybe")},
		{"bad log level", config.OptLogLevel("loud")},
		{"bad log format", config.OptLogFormat("xml")},
		{"bad destination", config.OptLogDestination("printer")},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			want := *cfg
			cfg.Update([]config.Option{v.opt})
			assert.Equal(t, want, *cfg,
				"invalid option must leave config unchanged")
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseHost("pg.example.org"),
		config.OptDatabaseDatabase("herbarium_staging"),
		config.OptLogLevel("debug"),
		config.OptHomeDir("/home/u"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "pg.example.org", dst.Database.Host)
	assert.Equal(t, "herbarium_staging", dst.Database.Database)
	assert.Equal(t, "debug", dst.Log.Level)
	assert.Empty(t, dst.HomeDir,
		"HomeDir is runtime state, not persisted configuration")
}
