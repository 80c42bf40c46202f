// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the entry name of a secret.
	FieldName = "name"

	// FieldValue targets the plaintext value of a secret.
	FieldValue = "value"
)

// MaxNameLength is the longest entry name accepted, in bytes. It is the bolt
// key size limit.
const MaxNameLength = 32768

// Password is a master password under validation.
type Password string

// SecretValidator validates [models.Secret] values and master passwords.
type SecretValidator struct{}

// NewSecretValidator returns a [Validator] for secrets and master passwords.
func NewSecretValidator() Validator {
	return &SecretValidator{}
}

// Validate implements [Validator]. For a secret, fields may name FieldName
// and FieldValue; without fields both are checked. A [Password] must not be
// empty.
func (v *SecretValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Secret:
		return v.validateSecret(ctx, value, fields...)
	case *models.Secret:
		return v.validateSecret(ctx, *value, fields...)
	case Password:
		if value == "" {
			return ErrEmptyPassword
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SecretValidator) validateSecret(_ context.Context, secret models.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := validateName(secret.Name); err != nil {
				return err
			}
		case FieldValue:
			if !utf8.ValidString(secret.Value) {
				return ErrInvalidValue
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case !utf8.ValidString(name):
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidName)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxNameLength)
	}
	return nil
}
