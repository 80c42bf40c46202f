// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from VAULT_-prefixed environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// envClipboardClear returns VAULT_APP_CLIPBOARD_CLEAR_AFTER when it is set to
// a non-empty value. Parse errors are reported by parseEnv.
func envClipboardClear() (time.Duration, bool) {
	v, ok := os.LookupEnv(EnvPrefix + "APP_CLIPBOARD_CLEAR_AFTER")
	if !ok || v == "" {
		return 0, false
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
