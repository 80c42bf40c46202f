// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "VAULT_"

// Supported storage drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation and logging settings.
	App App `envPrefix:"APP_"`

	// Storage selects and locates the vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the Argon2id parameters used for every key derivation.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Workers holds settings for the decryption worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: VAULT_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogFile is where the client appends its JSON log.
	// Env: VAULT_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: VAULT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ClipboardClearAfter is how long a copied secret stays in the clipboard.
	// Zero disables clearing.
	// Env: VAULT_APP_CLIPBOARD_CLEAR_AFTER
	ClipboardClearAfter time.Duration `env:"CLIPBOARD_CLEAR_AFTER"`
}

// Storage holds settings for the vault database.
type Storage struct {
	// Driver is either "bolt" or "sqlite".
	// Env: VAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the database file location.
	// Env: VAULT_STORAGE_PATH
	Path string `env:"PATH"`

	// OpenTimeout bounds how long opening waits for the file lock held by
	// another process.
	// Env: VAULT_STORAGE_OPEN_TIMEOUT
	OpenTimeout time.Duration `env:"OPEN_TIMEOUT"`
}

// Crypto holds Argon2id parameters. They are not recorded in the vault file,
// so a vault must be opened with the values it was created with.
type Crypto struct {
	// Env: VAULT_CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// Env: VAULT_CRYPTO_ARGON_MEMORY (KiB)
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY"`
	// Env: VAULT_CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Workers holds settings for background work.
type Workers struct {
	// DecryptParallelism bounds how many envelopes are opened concurrently
	// while listing. 1 means strictly sequential.
	// Env: VAULT_WORKERS_DECRYPT_PARALLELISM
	DecryptParallelism int `env:"DECRYPT_PARALLELISM"`
}

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	dir := DefaultDataDir()

	return &StructuredConfig{
		App: App{
			LogFile:             filepath.Join(dir, "vault.log"),
			LogLevel:            "info",
			ClipboardClearAfter: 30 * time.Second,
		},
		Storage: Storage{
			Driver:      DriverBolt,
			Path:        filepath.Join(dir, "vault.db"),
			OpenTimeout: 5 * time.Second,
		},
		Crypto: Crypto{
			ArgonTime:      2,
			ArgonMemoryKiB: 19 * 1024,
			ArgonThreads:   1,
		},
		Workers: Workers{
			DecryptParallelism: 1,
		},
	}
}

// DefaultDataDir returns ~/.go-pass-vault, or ".go-pass-vault" in the working
// directory when the home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".go-pass-vault"
	}
	return filepath.Join(home, ".go-pass-vault")
}

// Load builds, merges, and validates the configuration from all sources.
// flags may be nil when no command line is involved.
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
