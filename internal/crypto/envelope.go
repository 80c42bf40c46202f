// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// Envelope layout constants.
const (
	NonceSize       = 12 // standard GCM nonce
	TagSize         = 16
	MinEnvelopeSize = SaltSize + NonceSize
)

// envelopeCipher is the AES-256-GCM implementation of [EnvelopeCipher].
type envelopeCipher struct {
	kdf    KeyDeriver
	random io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] that derives a fresh key
// per envelope with kdf and draws salts and nonces from crypto/rand.
func NewEnvelopeCipher(kdf KeyDeriver) EnvelopeCipher {
	return &envelopeCipher{kdf: kdf, random: rand.Reader}
}

// Seal implements [EnvelopeCipher]. Output: salt ‖ nonce ‖ ciphertext.
func (c *envelopeCipher) Seal(plaintext, password []byte) ([]byte, error) {
	salt, err := GenerateSalt(c.random)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}

	gcm, err := newGCM(c.kdf.DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, 0, MinEnvelopeSize+len(plaintext)+gcm.Overhead())
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	return gcm.Seal(envelope, nonce, plaintext, nil), nil
}

// Open implements [EnvelopeCipher].
func (c *envelopeCipher) Open(envelope, password []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedEnvelope, len(envelope), MinEnvelopeSize)
	}

	salt := envelope[:SaltSize]
	nonce := envelope[SaltSize:MinEnvelopeSize]
	ciphertext := envelope[MinEnvelopeSize:]

	gcm, err := newGCM(c.kdf.DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}

	// A tag mismatch is the only signal here: wrong password and corrupted
	// bytes look the same.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
