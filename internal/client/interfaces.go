// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the interactive application and blocks until exit.
	Run(ctx context.Context) error

	// Close releases the vault file and the log file.
	Close() error
}
