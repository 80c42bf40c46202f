// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sqlCredentialRepository keeps the master credential as the single row of
// the "master_credential" table.
type sqlCredentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLCredentialRepository constructs a [CredentialRepository] backed by
// the provided database connection and logger.
func NewSQLCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &sqlCredentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sqlCredentialRepository) SaveCredential(ctx context.Context, credential models.MasterCredential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialQuery(credential)
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialRepository.SaveCredential").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlCredentialRepository.SaveCredential").
			Str("vault_id", credential.VaultID).
			Msg("failed to store master credential")
		return fmt.Errorf("%w: save credential: %w", ErrStorageIO, err)
	}

	return nil
}

func (r *sqlCredentialRepository) LoadCredential(ctx context.Context) (models.MasterCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery()
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialRepository.LoadCredential").Msg("failed to create query")
		return models.MasterCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.MasterCredential
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&credential.VaultID, &credential.Salt, &credential.Hash, &credential.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MasterCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlCredentialRepository.LoadCredential").
			Msg("failed to query master credential")
		return models.MasterCredential{}, fmt.Errorf("%w: load credential: %w", ErrStorageIO, err)
	}

	return credential, nil
}

func (r *sqlCredentialRepository) Wipe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	queries, err := buildWipeQueries()
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialRepository.Wipe").Msg("failed to create queries")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialRepository.Wipe").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, query := range queries {
		if _, err = tx.ExecContext(ctx, query); err != nil {
			log.Err(err).Str("func", "sqlCredentialRepository.Wipe").Msg("failed to execute wipe statement")
			return fmt.Errorf("%w: wipe vault: %w", ErrStorageIO, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlCredentialRepository.Wipe").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrCommitingTransaction, err)
	}

	return nil
}
