// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Sizes of the key material used across the vault.
const (
	SaltSize = 16
	KeySize  = 32 // AES-256
)

// KDFParams holds Argon2id tuning parameters.
type KDFParams struct {
	// Time is the number of passes over memory.
	Time uint32
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
}

// DefaultKDFParams returns the Argon2id parameters vaults are created with:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//
// Parameters are not stored in envelopes, so a vault must always be opened
// with the parameters it was written with.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      2,
		MemoryKiB: 19 * 1024,
		Threads:   1,
	}
}

// argon2KeyDeriver is the Argon2id implementation of [KeyDeriver].
type argon2KeyDeriver struct {
	params KDFParams
}

// NewArgon2KeyDeriver constructs a [KeyDeriver] backed by Argon2id with the
// given parameters.
func NewArgon2KeyDeriver(params KDFParams) KeyDeriver {
	return &argon2KeyDeriver{params: params}
}

// DeriveKey implements [KeyDeriver]. Memory exhaustion inside Argon2 is not
// recoverable and aborts the process.
func (k *argon2KeyDeriver) DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(
		password,
		salt,
		k.params.Time,
		k.params.MemoryKiB,
		k.params.Threads,
		KeySize,
	)
}

// GenerateSalt reads SaltSize random bytes from r.
func GenerateSalt(r io.Reader) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return salt, nil
}
