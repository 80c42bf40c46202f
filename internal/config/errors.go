package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver, an empty path or
	// a non-positive open timeout.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates Argon2id parameters Argon2 rejects.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidAppConfigs indicates invalid logging or clipboard settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive decrypt parallelism.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
