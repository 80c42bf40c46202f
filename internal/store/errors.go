package store

import "errors"

// Sentinel errors returned by repositories. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrEntryNotFound is returned by Get when no entry has the requested name.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrCredentialNotFound is returned when the vault holds no master
	// credential record.
	ErrCredentialNotFound = errors.New("master credential not found")

	// ErrStorageIO wraps every failure of the underlying database engine:
	// open, read, write, commit.
	ErrStorageIO = errors.New("storage i/o failure")

	// ErrInvalidEntryName is returned for empty names and for stored names that
	// are not valid UTF-8.
	ErrInvalidEntryName = errors.New("invalid entry name")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level SQL errors, wrapped together with [ErrStorageIO] where the
// database itself failed.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
