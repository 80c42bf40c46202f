// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository is the raw, name-keyed envelope storage of a vault. It never
// decrypts anything. Every write is durable before the call returns.
type EntryRepository interface {
	// Insert stores envelope under name, replacing any previous value.
	Insert(ctx context.Context, name string, envelope []byte) error
	// Get returns the stored bytes or ErrEntryNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	// Remove deletes name. Removing an absent name is not an error.
	Remove(ctx context.Context, name string) error
	// ForEach calls fn for every entry in byte-wise ascending name order and
	// stops at the first error fn returns.
	ForEach(ctx context.Context, fn func(name string, envelope []byte) error) error
}

// CredentialRepository persists the master credential record, which lives
// outside the entry namespace.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, credential models.MasterCredential) error
	// LoadCredential returns ErrCredentialNotFound when the vault was never
	// set up.
	LoadCredential(ctx context.Context) (models.MasterCredential, error)
	// Wipe removes the credential and every entry in a single transaction.
	Wipe(ctx context.Context) error
}
