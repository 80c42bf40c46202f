// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	entriesTable    = "entries"
	credentialTable = "master_credential"

	// credentialRowID is the id of the only row master_credential may hold.
	credentialRowID = 1
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertEntryQuery(name string, envelope []byte) (string, []any, error) {
	return sqlBuilder.
		Insert(entriesTable).
		Columns("name", "envelope").
		Values(name, envelope).
		Suffix("ON CONFLICT(name) DO UPDATE SET envelope = excluded.envelope, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildGetEntryQuery(name string) (string, []any, error) {
	return sqlBuilder.
		Select("envelope").
		From(entriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildDeleteEntryQuery(name string) (string, []any, error) {
	return sqlBuilder.
		Delete(entriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildSelectEntriesQuery lists entries in BINARY collation order, which for
// UTF-8 text is byte-wise order.
func buildSelectEntriesQuery() (string, []any, error) {
	return sqlBuilder.
		Select("name", "envelope").
		From(entriesTable).
		OrderBy("name").
		ToSql()
}

func buildUpsertCredentialQuery(credential models.MasterCredential) (string, []any, error) {
	return sqlBuilder.
		Insert(credentialTable).
		Columns("id", "vault_id", "salt", "hash", "created_at").
		Values(credentialRowID, credential.VaultID, credential.Salt, credential.Hash, credential.CreatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"vault_id = excluded.vault_id, salt = excluded.salt, hash = excluded.hash, created_at = excluded.created_at").
		ToSql()
}

func buildSelectCredentialQuery() (string, []any, error) {
	return sqlBuilder.
		Select("vault_id", "salt", "hash", "created_at").
		From(credentialTable).
		Where(sq.Eq{"id": credentialRowID}).
		ToSql()
}

func buildWipeQueries() ([]string, error) {
	queries := make([]string, 0, 2)
	for _, table := range []string{entriesTable, credentialTable} {
		query, _, err := sqlBuilder.Delete(table).ToSql()
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}
	return queries, nil
}
