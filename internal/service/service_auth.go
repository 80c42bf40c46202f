// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type authService struct {
	credentials store.CredentialRepository
	kdf         crypto.KeyDeriver
	random      io.Reader
	now         func() time.Time
	logger      *logger.Logger
}

// NewAuthService constructs an [AuthService] over credentials. Salts come
// from crypto/rand.
func NewAuthService(credentials store.CredentialRepository, kdf crypto.KeyDeriver, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		kdf:         kdf,
		random:      rand.Reader,
		now:         time.Now,
		logger:      logger,
	}
}

func (a *authService) IsConfigured(ctx context.Context) (bool, error) {
	credential, err := a.credentials.LoadCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading master credential: %w", err)
	}

	return credential.IsComplete(), nil
}

func (a *authService) Setup(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return ErrEmptyPassword
	}

	configured, err := a.IsConfigured(ctx)
	if err != nil {
		return err
	}
	if configured {
		return ErrAlreadyConfigured
	}

	salt, err := crypto.GenerateSalt(a.random)
	if err != nil {
		log.Err(err).Str("func", "authService.Setup").Msg("failed to generate salt")
		return err
	}

	credential := models.MasterCredential{
		VaultID:   models.NewVaultID(),
		Salt:      salt,
		Hash:      a.kdf.DeriveKey([]byte(password), salt),
		CreatedAt: a.now().UTC(),
	}

	if err = a.credentials.SaveCredential(ctx, credential); err != nil {
		return fmt.Errorf("error saving master credential: %w", err)
	}

	log.Info().
		Str("func", "authService.Setup").
		Str("vault_id", credential.VaultID).
		Msg("master password configured")

	return nil
}

func (a *authService) Verify(ctx context.Context, password string) (bool, error) {
	credential, err := a.loadComplete(ctx)
	if err != nil {
		return false, err
	}

	derived := a.kdf.DeriveKey([]byte(password), credential.Salt)

	return subtle.ConstantTimeCompare(derived, credential.Hash) == 1, nil
}

func (a *authService) Reset(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	ok, err := a.Verify(ctx, password)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn().Str("func", "authService.Reset").Msg("reset refused: wrong password")
		return ErrWrongPassword
	}

	if err = a.credentials.Wipe(ctx); err != nil {
		return fmt.Errorf("error wiping vault: %w", err)
	}

	log.Info().Str("func", "authService.Reset").Msg("vault reset")

	return nil
}

func (a *authService) VaultID(ctx context.Context) (string, error) {
	credential, err := a.loadComplete(ctx)
	if err != nil {
		return "", err
	}
	return credential.VaultID, nil
}

// loadComplete maps an absent or partial credential to ErrMissingCredential.
func (a *authService) loadComplete(ctx context.Context) (models.MasterCredential, error) {
	credential, err := a.credentials.LoadCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.MasterCredential{}, ErrMissingCredential
	}
	if err != nil {
		return models.MasterCredential{}, fmt.Errorf("error loading master credential: %w", err)
	}
	if !credential.IsComplete() {
		return models.MasterCredential{}, ErrMissingCredential
	}

	return credential, nil
}
