// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sqlEntryRepository is the SQLite-backed implementation of
// [EntryRepository] over the "entries" table.
type sqlEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLEntryRepository constructs an [EntryRepository] backed by the
// provided database connection and logger.
func NewSQLEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &sqlEntryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sqlEntryRepository) Insert(ctx context.Context, name string, envelope []byte) error {
	log := logger.FromContext(ctx)

	if err := validateName(name); err != nil {
		return err
	}

	query, args, err := buildUpsertEntryQuery(name, envelope)
	if err != nil {
		log.Err(err).Str("func", "sqlEntryRepository.Insert").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlEntryRepository.Insert").
			Str("name", name).
			Msg("failed to execute upsert for entry")
		return fmt.Errorf("%w: insert %q: %w", ErrStorageIO, name, err)
	}

	return nil
}

func (r *sqlEntryRepository) Get(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(name)
	if err != nil {
		log.Err(err).Str("func", "sqlEntryRepository.Get").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var envelope []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&envelope)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlEntryRepository.Get").
			Str("name", name).
			Msg("failed to query entry")
		return nil, fmt.Errorf("%w: get %q: %w", ErrStorageIO, name, err)
	}

	return envelope, nil
}

func (r *sqlEntryRepository) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(name)
	if err != nil {
		log.Err(err).Str("func", "sqlEntryRepository.Remove").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlEntryRepository.Remove").
			Str("name", name).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: remove %q: %w", ErrStorageIO, name, err)
	}

	return nil
}

func (r *sqlEntryRepository) ForEach(ctx context.Context, fn func(name string, envelope []byte) error) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery()
	if err != nil {
		log.Err(err).Str("func", "sqlEntryRepository.ForEach").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	records, err := r.scanEntries(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "sqlEntryRepository.ForEach").
			Msg("failed to scan entries")
		return fmt.Errorf("%w: scan entries: %w", ErrStorageIO, err)
	}

	return visit(ctx, records, fn)
}

func (r *sqlEntryRepository) scanEntries(ctx context.Context, query string, args []any) ([]record, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []record
	for rows.Next() {
		var rec record
		if err = rows.Scan(&rec.name, &rec.envelope); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
