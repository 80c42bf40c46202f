// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// SecretServiceWrapper defines middleware composition for SecretService.
// Implementations wrap an existing SecretService to add behavior such as
// validating.
type SecretServiceWrapper interface {
	Wrap(SecretService) SecretService
}

// SecretValidationService rejects malformed names, values and empty master
// passwords before they reach the inner [SecretService].
type SecretValidationService struct {
	inner     SecretService
	validator validators.Validator
}

func NewSecretValidationService() SecretServiceWrapper {
	return &SecretValidationService{
		validator: validators.NewSecretValidator(),
	}
}

func (v *SecretValidationService) Wrap(inner SecretService) SecretService {
	v.inner = inner
	return v
}

func (v *SecretValidationService) AddOrUpdate(ctx context.Context, master, name, plaintext string) error {
	if err := v.validator.Validate(ctx, validators.Password(master)); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.Secret{Name: name, Value: plaintext}); err != nil {
		return fmt.Errorf("error during secret validation before saving: %w", err)
	}

	return v.inner.AddOrUpdate(ctx, master, name, plaintext)
}

func (v *SecretValidationService) GetRaw(ctx context.Context, name string) ([]byte, bool, error) {
	if err := v.validator.Validate(ctx, models.Secret{Name: name}, validators.FieldName); err != nil {
		return nil, false, err
	}

	return v.inner.GetRaw(ctx, name)
}

func (v *SecretValidationService) Delete(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, models.Secret{Name: name}, validators.FieldName); err != nil {
		return err
	}

	return v.inner.Delete(ctx, name)
}

func (v *SecretValidationService) List(ctx context.Context, master string) ([]models.Secret, error) {
	if err := v.validator.Validate(ctx, validators.Password(master)); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, master)
}
