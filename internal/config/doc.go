// Package config provides configuration loading, merging, and validation
// facilities for the vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON or YAML, chosen by extension)
//  3. Environment variables (prefixed with VAULT_)
//  4. Command-line flags
//
// The main entry point is [Load].
package config
