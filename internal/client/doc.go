// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault application runtime.
//
// It opens the configured vault file, wires the engine services on top of
// it and hands them either to the terminal UI or to one-shot CLI commands.
package client
