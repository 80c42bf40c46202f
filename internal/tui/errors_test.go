// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "undecryptable entry names it",
			err:  fmt.Errorf("list: %w", &service.EntryError{Name: "Hotmail", Err: crypto.ErrMalformedEnvelope}),
			want: `Secret "Hotmail" cannot be decrypted. Delete it to list the others.`,
		},
		{
			name: "entry with wrong key",
			err:  &service.EntryError{Name: "Gmail", Err: crypto.ErrAuthenticationFailure},
			want: `Secret "Gmail" cannot be decrypted. Delete it to list the others.`,
		},
		{name: "wrong password", err: service.ErrWrongPassword, want: "Wrong master password"},
		{name: "missing credential", err: fmt.Errorf("verify: %w", service.ErrMissingCredential), want: "The vault has no master password yet"},
		{name: "already configured", err: service.ErrAlreadyConfigured, want: "The vault is already set up"},
		{name: "empty name", err: fmt.Errorf("validation: %w", service.ErrEmptyName), want: "Name is required"},
		{name: "empty password", err: service.ErrEmptyPassword, want: "Master password is required"},
		{name: "storage", err: fmt.Errorf("%w: disk full", store.ErrStorageIO), want: "Storage failure: storage i/o failure: disk full"},
		{name: "other", err: errBoom, want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
