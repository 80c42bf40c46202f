package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestRegisterFlags_AllFields(t *testing.T) {
	f := parseTestFlags(t,
		"-c", "/etc/vault.yaml",
		"--driver", "sqlite",
		"--db", "/tmp/v.sqlite",
		"--open-timeout", "3s",
		"--argon-time", "4",
		"--argon-memory", "32768",
		"--argon-threads", "2",
		"--parallelism", "6",
		"--log-file", "/tmp/v.log",
		"--log-level", "warn",
		"--clipboard-clear", "1m",
	)

	cfg := f.config()

	assert.Equal(t, "/etc/vault.yaml", cfg.ConfigFilePath)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/v.sqlite", cfg.Storage.Path)
	assert.Equal(t, 3*time.Second, cfg.Storage.OpenTimeout)
	assert.Equal(t, uint32(4), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.ArgonMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)
	assert.Equal(t, 6, cfg.Workers.DecryptParallelism)
	assert.Equal(t, "/tmp/v.log", cfg.App.LogFile)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, time.Minute, cfg.App.ClipboardClearAfter)
}

func TestRegisterFlags_LongConfigAlias(t *testing.T) {
	f := parseTestFlags(t, "--config", "/etc/vault.json")
	assert.Equal(t, "/etc/vault.json", f.config().ConfigFilePath)
}

func TestRegisterFlags_NoArgsLeavesZeroValues(t *testing.T) {
	f := parseTestFlags(t)
	assert.Equal(t, &StructuredConfig{}, f.config())
}

func TestRegisterFlags_InvalidValue(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--argon-time", "many"}))
}
