// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the master credential of a vault.
type AuthService interface {
	// IsConfigured reports whether a complete master credential exists.
	IsConfigured(ctx context.Context) (bool, error)
	// Setup creates the master credential. It refuses with
	// ErrAlreadyConfigured when one exists.
	Setup(ctx context.Context, password string) error
	// Verify checks password against the stored credential. A wrong password
	// yields false and no error.
	Verify(ctx context.Context, password string) (bool, error)
	// Reset verifies password and then erases the credential and every entry.
	Reset(ctx context.Context, password string) error
	// VaultID returns the identifier assigned at setup.
	VaultID(ctx context.Context) (string, error)
}

// SecretService stores and reveals named secrets, each sealed under the
// master password in its own envelope.
type SecretService interface {
	AddOrUpdate(ctx context.Context, master, name, plaintext string) error
	// GetRaw returns the stored envelope without decrypting it. The boolean
	// is false when no entry has that name.
	GetRaw(ctx context.Context, name string) ([]byte, bool, error)
	Delete(ctx context.Context, name string) error
	// List decrypts every entry in storage order. It is all or nothing: the
	// first entry that fails to open aborts the listing with an *EntryError.
	List(ctx context.Context, master string) ([]models.Secret, error)
}
