// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// VaultServices is the engine boundary handed to the presentation layer.
type VaultServices struct {
	Auth    AuthService
	Secrets SecretService
}

// NewVaultServices wires the services over an open vault. Both share one
// Argon2id deriver configured from cfg.
func NewVaultServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *VaultServices {
	kdf := crypto.NewArgon2KeyDeriver(crypto.KDFParams{
		Time:      cfg.Crypto.ArgonTime,
		MemoryKiB: cfg.Crypto.ArgonMemoryKiB,
		Threads:   cfg.Crypto.ArgonThreads,
	})
	cipher := crypto.NewEnvelopeCipher(kdf)

	secrets := NewSecretService(storages.Entries, cipher, cfg.Workers.DecryptParallelism, logger)

	return &VaultServices{
		Auth:    NewAuthService(storages.Credentials, kdf, logger),
		Secrets: NewSecretValidationService().Wrap(secrets),
	}
}
