// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// boltEntryRepository is the bolt-backed implementation of [EntryRepository].
// Entries live in the "entries" bucket; bolt keeps keys sorted byte-wise, and
// every Update commit is fsynced.
type boltEntryRepository struct {
	*BoltDB
	logger *logger.Logger
}

// NewBoltEntryRepository constructs an [EntryRepository] on an open bolt file.
func NewBoltEntryRepository(db *BoltDB, logger *logger.Logger) EntryRepository {
	return &boltEntryRepository{
		BoltDB: db,
		logger: logger,
	}
}

func (r *boltEntryRepository) Insert(ctx context.Context, name string, envelope []byte) error {
	log := logger.FromContext(ctx)

	if err := validateName(name); err != nil {
		return err
	}

	err := r.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(name), envelope)
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltEntryRepository.Insert").
			Str("name", name).
			Msg("failed to store entry")
		return fmt.Errorf("%w: insert %q: %w", ErrStorageIO, name, err)
	}

	return nil
}

func (r *boltEntryRepository) Get(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var envelope []byte
	err := r.DB.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(entriesBucket).Get([]byte(name))
		if value == nil {
			return ErrEntryNotFound
		}
		// value is only valid for the life of the transaction
		envelope = append([]byte(nil), value...)
		return nil
	})
	switch {
	case err == nil:
		return envelope, nil
	case errors.Is(err, ErrEntryNotFound):
		return nil, err
	default:
		log.Err(err).
			Str("func", "boltEntryRepository.Get").
			Str("name", name).
			Msg("failed to read entry")
		return nil, fmt.Errorf("%w: get %q: %w", ErrStorageIO, name, err)
	}
}

func (r *boltEntryRepository) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	err := r.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(name))
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltEntryRepository.Remove").
			Str("name", name).
			Msg("failed to remove entry")
		return fmt.Errorf("%w: remove %q: %w", ErrStorageIO, name, err)
	}

	return nil
}

func (r *boltEntryRepository) ForEach(ctx context.Context, fn func(name string, envelope []byte) error) error {
	log := logger.FromContext(ctx)

	var records []record
	err := r.DB.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(entriesBucket).ForEach(func(k, v []byte) error {
			records = append(records, record{
				name:     string(k),
				envelope: append([]byte(nil), v...),
			})
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltEntryRepository.ForEach").
			Msg("failed to scan entries")
		return fmt.Errorf("%w: scan entries: %w", ErrStorageIO, err)
	}

	return visit(ctx, records, fn)
}

// visit feeds copied records to fn in order, checking names and ctx first.
func visit(ctx context.Context, records []record, fn func(name string, envelope []byte) error) error {
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := validateName(rec.name); err != nil {
			return err
		}
		if err := fn(rec.name, rec.envelope); err != nil {
			return err
		}
	}
	return nil
}
