// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Lengths of the master credential fields.
const (
	CredentialSaltSize = 16
	CredentialHashSize = 32
)

// MasterCredential is the single verification record of a vault. It holds the
// salt and the Argon2id output of the master password; the password itself is
// never stored.
//
// The record lives outside the entry namespace, so no entry name can collide
// with it.
type MasterCredential struct {
	// VaultID identifies the vault instance. Assigned once at setup.
	VaultID string `json:"vault_id"`

	// Salt is the 16 random bytes fed to the key derivation.
	Salt []byte `json:"salt"`

	// Hash is the 32-byte key derived from the master password and Salt.
	Hash []byte `json:"hash"`

	// CreatedAt is the moment the master password was set up.
	CreatedAt time.Time `json:"created_at"`
}

// IsComplete reports whether both salt and hash are present with the
// expected lengths. A credential that is not complete counts as not
// configured.
func (c MasterCredential) IsComplete() bool {
	return len(c.Salt) == CredentialSaltSize && len(c.Hash) == CredentialHashSize
}

// NewVaultID returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the clock sequence cannot be produced.
func NewVaultID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
