package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "vault.json", `{
		"app": {"log_file": "/var/log/vault.log", "log_level": "error", "clipboard_clear_after": "10s"},
		"storage": {"driver": "sqlite", "path": "/data/vault.sqlite", "open_timeout": 1000000000},
		"crypto": {"argon_time": 3, "argon_memory": 65536, "argon_threads": 2},
		"workers": {"decrypt_parallelism": 4}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/vault.log", cfg.App.LogFile)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.App.ClipboardClearAfter)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/data/vault.sqlite", cfg.Storage.Path)
	assert.Equal(t, time.Second, cfg.Storage.OpenTimeout)
	assert.Equal(t, uint32(3), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(65536), cfg.Crypto.ArgonMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)
	assert.Equal(t, 4, cfg.Workers.DecryptParallelism)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	for _, ext := range []string{"vault.yaml", "vault.YML"} {
		t.Run(ext, func(t *testing.T) {
			path := writeTempFile(t, ext, `
app:
  log_level: debug
  clipboard_clear_after: 2m
storage:
  driver: bolt
  path: /data/vault.db
  open_timeout: 500ms
crypto:
  argon_time: 1
workers:
  decrypt_parallelism: 2
`)

			cfg, err := parseFile(path)
			require.NoError(t, err)

			assert.Equal(t, "debug", cfg.App.LogLevel)
			assert.Equal(t, 2*time.Minute, cfg.App.ClipboardClearAfter)
			assert.Equal(t, DriverBolt, cfg.Storage.Driver)
			assert.Equal(t, "/data/vault.db", cfg.Storage.Path)
			assert.Equal(t, 500*time.Millisecond, cfg.Storage.OpenTimeout)
			assert.Equal(t, uint32(1), cfg.Crypto.ArgonTime)
			assert.Zero(t, cfg.Crypto.ArgonMemoryKiB)
			assert.Equal(t, 2, cfg.Workers.DecryptParallelism)
		})
	}
}

func TestParseFile_YAMLNumericDuration(t *testing.T) {
	path := writeTempFile(t, "vault.yaml", "storage:\n  open_timeout: 1000\n")

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(1000), cfg.Storage.OpenTimeout)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseFile_Malformed(t *testing.T) {
	jsonPath := writeTempFile(t, "bad.json", `{"storage": `)
	_, err := parseFile(jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")

	yamlPath := writeTempFile(t, "bad.yaml", "storage: [unterminated")
	_, err = parseFile(yamlPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestParseFileLayer_ClipboardClearPresence(t *testing.T) {
	zero := writeTempFile(t, "zero.json", `{"app": {"clipboard_clear_after": "0s"}}`)
	_, clearAfter, err := parseFileLayer(zero)
	require.NoError(t, err)
	require.NotNil(t, clearAfter)
	assert.Equal(t, time.Duration(0), *clearAfter)

	absent := writeTempFile(t, "absent.yaml", "storage:\n  driver: bolt\n")
	_, clearAfter, err = parseFileLayer(absent)
	require.NoError(t, err)
	assert.Nil(t, clearAfter)
}
