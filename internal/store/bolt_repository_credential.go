// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// boltCredentialRepository keeps the master credential as JSON under
// "master_credential" in the "meta" bucket.
type boltCredentialRepository struct {
	*BoltDB
	logger *logger.Logger
}

// NewBoltCredentialRepository constructs a [CredentialRepository] on an open
// bolt file.
func NewBoltCredentialRepository(db *BoltDB, logger *logger.Logger) CredentialRepository {
	return &boltCredentialRepository{
		BoltDB: db,
		logger: logger,
	}
}

func (r *boltCredentialRepository) SaveCredential(ctx context.Context, credential models.MasterCredential) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(credential)
	if err != nil {
		return fmt.Errorf("%w: encode credential: %w", ErrStorageIO, err)
	}

	err = r.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(metaBucket).Put(credentialKey, payload)
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltCredentialRepository.SaveCredential").
			Str("vault_id", credential.VaultID).
			Msg("failed to store master credential")
		return fmt.Errorf("%w: save credential: %w", ErrStorageIO, err)
	}

	return nil
}

func (r *boltCredentialRepository) LoadCredential(ctx context.Context) (models.MasterCredential, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := r.DB.View(func(tx *bbolt.Tx) error {
		if value := tx.Bucket(metaBucket).Get(credentialKey); value != nil {
			payload = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltCredentialRepository.LoadCredential").
			Msg("failed to read master credential")
		return models.MasterCredential{}, fmt.Errorf("%w: load credential: %w", ErrStorageIO, err)
	}
	if payload == nil {
		return models.MasterCredential{}, ErrCredentialNotFound
	}

	var credential models.MasterCredential
	if err = json.Unmarshal(payload, &credential); err != nil {
		log.Err(err).
			Str("func", "boltCredentialRepository.LoadCredential").
			Msg("failed to decode master credential")
		return models.MasterCredential{}, fmt.Errorf("%w: decode credential: %w", ErrStorageIO, err)
	}

	return credential, nil
}

func (r *boltCredentialRepository) Wipe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := r.DB.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{entriesBucket, metaBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltCredentialRepository.Wipe").
			Msg("failed to wipe vault")
		return fmt.Errorf("%w: wipe vault: %w", ErrStorageIO, err)
	}

	return nil
}
