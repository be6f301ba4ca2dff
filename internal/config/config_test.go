package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Fills defaults for omitted keys", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"8080\"\n"), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the remaining keys have their defaults
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, SourceFile, conf.ValueTables.Source)
		assert.Equal(t, "vx.npy", conf.ValueTables.XFile)
		assert.Equal(t, "vo.npy", conf.ValueTables.OFile)
		assert.Equal(t, "base3", conf.ValueTables.Encoding)
		assert.InDelta(t, 0.0, conf.ValueTables.MissingValue, 1e-9)
		assert.False(t, conf.ValueTables.UsesRedis())
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested value table settings", func(t *testing.T) {
		// Given: a config file for redis-backed tables
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "value-tables:\n  source: redis\n  missing-value: -0.5\nredis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values are applied
		require.NoError(t, err)
		assert.True(t, conf.ValueTables.UsesRedis())
		assert.InDelta(t, -0.5, conf.ValueTables.MissingValue, 1e-9)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
