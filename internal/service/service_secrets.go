// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type secretService struct {
	entries     store.EntryRepository
	cipher      crypto.EnvelopeCipher
	parallelism int
	logger      *logger.Logger
}

// NewSecretService constructs a [SecretService]. parallelism bounds how many
// envelopes List opens at once; 1 keeps listing strictly sequential.
func NewSecretService(entries store.EntryRepository, cipher crypto.EnvelopeCipher, parallelism int, logger *logger.Logger) SecretService {
	return &secretService{
		entries:     entries,
		cipher:      cipher,
		parallelism: parallelism,
		logger:      logger,
	}
}

func (s *secretService) AddOrUpdate(ctx context.Context, master, name, plaintext string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrEmptyName
	}

	envelope, err := s.cipher.Seal([]byte(plaintext), []byte(master))
	if err != nil {
		log.Err(err).Str("func", "secretService.AddOrUpdate").Str("name", name).Msg("failed to seal secret")
		return fmt.Errorf("error sealing secret %q: %w", name, err)
	}

	if err = s.entries.Insert(ctx, name, envelope); err != nil {
		return fmt.Errorf("error saving secret %q: %w", name, err)
	}

	return nil
}

func (s *secretService) GetRaw(ctx context.Context, name string) ([]byte, bool, error) {
	envelope, err := s.entries.Get(ctx, name)
	if errors.Is(err, store.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading entry %q: %w", name, err)
	}

	return envelope, true, nil
}

func (s *secretService) Delete(ctx context.Context, name string) error {
	if err := s.entries.Remove(ctx, name); err != nil {
		return fmt.Errorf("error deleting entry %q: %w", name, err)
	}
	return nil
}

func (s *secretService) List(ctx context.Context, master string) ([]models.Secret, error) {
	log := logger.FromContext(ctx)

	var entries []models.Entry
	err := s.entries.ForEach(ctx, func(name string, envelope []byte) error {
		entries = append(entries, models.Entry{Name: name, Envelope: envelope})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning entries: %w", err)
	}

	secrets := make([]models.Secret, len(entries))
	err = workers.RunOrdered(ctx, s.parallelism, len(entries), func(_ context.Context, i int) error {
		plaintext, openErr := s.cipher.Open(entries[i].Envelope, []byte(master))
		if openErr != nil {
			return &EntryError{Name: entries[i].Name, Err: openErr}
		}
		secrets[i] = models.Secret{
			Name:  entries[i].Name,
			Value: strings.ToValidUTF8(string(plaintext), "\uFFFD"),
		}
		return nil
	})
	if err != nil {
		var entryErr *EntryError
		if errors.As(err, &entryErr) {
			log.Err(entryErr.Err).
				Str("func", "secretService.List").
				Str("name", entryErr.Name).
				Msg("failed to open entry")
		}
		return nil, err
	}

	return secrets, nil
}
