package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points HOME at a temp dir and clears every variable the loader
// reads, so the developer's environment cannot leak into assertions.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"VAULT_CONFIG", "VAULT_APP_LOG_FILE", "VAULT_APP_LOG_LEVEL", "VAULT_APP_CLIPBOARD_CLEAR_AFTER",
		"VAULT_STORAGE_DRIVER", "VAULT_STORAGE_PATH", "VAULT_STORAGE_OPEN_TIMEOUT",
		"VAULT_CRYPTO_ARGON_TIME", "VAULT_CRYPTO_ARGON_MEMORY", "VAULT_CRYPTO_ARGON_THREADS",
		"VAULT_WORKERS_DECRYPT_PARALLELISM",
	} {
		t.Setenv(k, "")
	}
	return home
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(home, ".go-pass-vault", "vault.db"), cfg.Storage.Path)
	assert.Equal(t, filepath.Join(home, ".go-pass-vault", "vault.log"), cfg.App.LogFile)
	assert.Equal(t, 5*time.Second, cfg.Storage.OpenTimeout)
	assert.Equal(t, uint32(2), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(19456), cfg.Crypto.ArgonMemoryKiB)
	assert.Equal(t, uint8(1), cfg.Crypto.ArgonThreads)
	assert.Equal(t, 1, cfg.Workers.DecryptParallelism)
	assert.Equal(t, 30*time.Second, cfg.App.ClipboardClearAfter)
}

// TestLoad_Precedence verifies defaults < file < env < flags.
func TestLoad_Precedence(t *testing.T) {
	isolateEnv(t)

	path := writeTempFile(t, "vault.yaml", `
storage:
  driver: sqlite
  path: /from/file.sqlite
crypto:
  argon_time: 3
workers:
  decrypt_parallelism: 2
app:
  log_level: error
`)

	t.Setenv("VAULT_CONFIG", path)
	t.Setenv("VAULT_STORAGE_PATH", "/from/env.sqlite")
	t.Setenv("VAULT_WORKERS_DECRYPT_PARALLELISM", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--parallelism", "4"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver, "file overrides defaults")
	assert.Equal(t, uint32(3), cfg.Crypto.ArgonTime, "file overrides defaults")
	assert.Equal(t, "error", cfg.App.LogLevel, "file overrides defaults")
	assert.Equal(t, "/from/env.sqlite", cfg.Storage.Path, "env overrides file")
	assert.Equal(t, 4, cfg.Workers.DecryptParallelism, "flags override env")
	assert.Equal(t, uint32(19456), cfg.Crypto.ArgonMemoryKiB, "untouched default survives")
}

func TestLoad_FlagConfigPathWinsOverEnv(t *testing.T) {
	isolateEnv(t)

	envFile := writeTempFile(t, "env.json", `{"storage": {"path": "/env-file.db"}}`)
	flagFile := writeTempFile(t, "flag.json", `{"storage": {"path": "/flag-file.db"}}`)
	t.Setenv("VAULT_CONFIG", envFile)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", flagFile}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "/flag-file.db", cfg.Storage.Path)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv("VAULT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestLoad_ValidationFailure(t *testing.T) {
	isolateEnv(t)
	t.Setenv("VAULT_STORAGE_DRIVER", "postgres")

	_, err := Load(nil)
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestLoad_ClipboardClearZero verifies that an explicit zero delay from any
// layer reaches the result and turns clearing off instead of falling back to
// the 30s default.
func TestLoad_ClipboardClearZero(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  string
		args []string
		want time.Duration
	}{
		{name: "flag zero", args: []string{"--clipboard-clear", "0s"}, want: 0},
		{name: "env zero", env: "0s", want: 0},
		{name: "file zero", file: "app:\n  clipboard_clear_after: 0s\n", want: 0},
		{name: "flag beats env zero", env: "0s", args: []string{"--clipboard-clear", "5s"}, want: 5 * time.Second},
		{name: "flag zero beats env", env: "1m", args: []string{"--clipboard-clear", "0"}, want: 0},
		{name: "env zero beats file", env: "0s", file: "app:\n  clipboard_clear_after: 2m\n", want: 0},
		{name: "env beats file zero", env: "15s", file: "app:\n  clipboard_clear_after: 0s\n", want: 15 * time.Second},
		{name: "absent flag keeps default", args: []string{"--parallelism", "2"}, want: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			if tt.file != "" {
				t.Setenv("VAULT_CONFIG", writeTempFile(t, "vault.yaml", tt.file))
			}
			if tt.env != "" {
				t.Setenv("VAULT_APP_CLIPBOARD_CLEAR_AFTER", tt.env)
			}

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags := RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			cfg, err := Load(flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.App.ClipboardClearAfter)
		})
	}
}

func TestLoad_NegativeClipboardClearFlagRejected(t *testing.T) {
	isolateEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--clipboard-clear", "-1s"}))

	_, err := Load(flags)
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(c *StructuredConfig) { c.Storage.Driver = DriverSQLite }},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.Driver = "sled" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty path", mutate: func(c *StructuredConfig) { c.Storage.Path = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero open timeout", mutate: func(c *StructuredConfig) { c.Storage.OpenTimeout = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero argon time", mutate: func(c *StructuredConfig) { c.Crypto.ArgonTime = 0 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "zero argon threads", mutate: func(c *StructuredConfig) { c.Crypto.ArgonThreads = 0 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "argon memory too small", mutate: func(c *StructuredConfig) {
			c.Crypto.ArgonThreads = 4
			c.Crypto.ArgonMemoryKiB = 16
		}, wantErr: ErrInvalidCryptoConfigs},
		{name: "zero parallelism", mutate: func(c *StructuredConfig) { c.Workers.DecryptParallelism = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "empty log file", mutate: func(c *StructuredConfig) { c.App.LogFile = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative clipboard delay", mutate: func(c *StructuredConfig) { c.App.ClipboardClearAfter = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "chatty" }, wantErr: ErrInvalidAppConfigs},
		{name: "upper-case log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
