// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the repositories of one open vault file into a single value
// that is passed to the service layer. It is opened once and closed on exit.
type Storages struct {
	// Entries holds the name to envelope mapping.
	Entries EntryRepository

	// Credentials holds the master credential record.
	Credentials CredentialRepository

	closer io.Closer
}

// NewStorages opens the vault database selected by cfg.Driver:
//   - "bolt": a bbolt file with "entries" and "meta" buckets;
//   - "sqlite": a SQLite file, migrated to the latest schema with goose.
//
// Any other driver yields [ErrUnsupportedDriver].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverBolt:
		db, err := NewConnectBolt(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("bolt connection error: %w", err)
		}

		return &Storages{
			Entries:     NewBoltEntryRepository(db, logger),
			Credentials: NewBoltCredentialRepository(db, logger),
			closer:      db,
		}, nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageIO, err)
		}

		return &Storages{
			Entries:     NewSQLEntryRepository(db, logger),
			Credentials: NewSQLCredentialRepository(db, logger),
			closer:      db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Close releases the database file and its lock.
func (s *Storages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
