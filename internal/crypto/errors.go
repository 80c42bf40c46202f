// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrRandomnessUnavailable is returned when the OS CSPRNG cannot supply
	// salt or nonce bytes. Callers must abort the operation.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")

	// ErrAuthenticationFailure is returned when the AEAD tag check fails:
	// either the password is wrong or the envelope is corrupted.
	ErrAuthenticationFailure = errors.New("envelope authentication failed")

	// ErrMalformedEnvelope is returned when an envelope is too short to hold
	// a salt and a nonce.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
