// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverBolt, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" || cfg.Storage.OpenTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	// Argon2 requires at least 8 KiB of memory per thread.
	if cfg.Crypto.ArgonTime < 1 || cfg.Crypto.ArgonThreads < 1 ||
		cfg.Crypto.ArgonMemoryKiB < 8*uint32(cfg.Crypto.ArgonThreads) {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Workers.DecryptParallelism < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogFile == "" || cfg.App.ClipboardClearAfter < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.LogLevel != "" && !slices.Contains(logLevels, strings.ToLower(cfg.App.LogLevel)) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}
