// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewConnectSQLite opens the SQLite vault file at cfg.Path. Every commit is
// synced to disk (synchronous=FULL) and the pool holds a single connection,
// so writes from one process are serialized.
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("%w: create database directory: %w", ErrStorageIO, err)
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorageIO, cfg.Path, err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStorageIO, cfg.Path, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func sqliteDSN(cfg config.Storage) string {
	return fmt.Sprintf("%s?_synchronous=FULL&_busy_timeout=%d&_txlock=immediate",
		cfg.Path, cfg.OpenTimeout.Milliseconds())
}
