// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Bucket and key names of the bolt layout.
var (
	entriesBucket = []byte("entries")
	metaBucket    = []byte("meta")

	credentialKey = []byte("master_credential")

	// Keys under which older vaults kept the credential inside the entry
	// namespace.
	legacySaltKey = []byte("salt")
	legacyHashKey = []byte("hash")
)

// BoltDB is an open bolt vault file.
type BoltDB struct {
	*bbolt.DB
	logger *logger.Logger
}

// NewConnectBolt opens (creating if needed) the bolt file at cfg.Path. It
// waits at most cfg.OpenTimeout for the file lock held by another process,
// makes sure both buckets exist and moves a legacy credential out of the
// entry namespace.
func NewConnectBolt(cfg config.Storage, log *logger.Logger) (*BoltDB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectBolt").Msg("error creating database directory")
			return nil, fmt.Errorf("%w: create database directory: %w", ErrStorageIO, err)
		}
	}

	conn, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Str("path", cfg.Path).Msg("error opening database")
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorageIO, cfg.Path, err)
	}

	db := &BoltDB{DB: conn, logger: log}

	if err = db.Update(db.prepareLayout); err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Msg("error preparing database layout")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: prepare layout: %w", ErrStorageIO, err)
	}
	log.Debug().Str("func", "NewConnectBolt").Msg("opened bolt database successfully")

	return db, nil
}

func (db *BoltDB) prepareLayout(tx *bbolt.Tx) error {
	entries, err := tx.CreateBucketIfNotExists(entriesBucket)
	if err != nil {
		return err
	}
	meta, err := tx.CreateBucketIfNotExists(metaBucket)
	if err != nil {
		return err
	}

	return db.migrateLegacyCredential(entries, meta)
}

// migrateLegacyCredential moves "salt" and "hash" entries into the credential
// record. Both must be present with the credential lengths, and no credential
// record may exist yet; otherwise the keys stay ordinary entries.
func (db *BoltDB) migrateLegacyCredential(entries, meta *bbolt.Bucket) error {
	if meta.Get(credentialKey) != nil {
		return nil
	}

	salt := entries.Get(legacySaltKey)
	hash := entries.Get(legacyHashKey)
	if len(salt) != models.CredentialSaltSize || len(hash) != models.CredentialHashSize {
		return nil
	}

	credential := models.MasterCredential{
		VaultID:   models.NewVaultID(),
		Salt:      append([]byte(nil), salt...),
		Hash:      append([]byte(nil), hash...),
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(credential)
	if err != nil {
		return fmt.Errorf("encode legacy credential: %w", err)
	}
	if err = meta.Put(credentialKey, payload); err != nil {
		return err
	}
	if err = entries.Delete(legacySaltKey); err != nil {
		return err
	}
	if err = entries.Delete(legacyHashKey); err != nil {
		return err
	}

	db.logger.Info().
		Str("func", "BoltDB.migrateLegacyCredential").
		Str("vault_id", credential.VaultID).
		Msg("moved legacy master credential out of the entry namespace")

	return nil
}
