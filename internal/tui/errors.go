// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

var errNoSuchEntry = errors.New("no secret with this name")

// humanizeError turns engine errors into text for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var entryErr *service.EntryError
	if errors.As(err, &entryErr) &&
		(errors.Is(err, crypto.ErrMalformedEnvelope) || errors.Is(err, crypto.ErrAuthenticationFailure)) {
		return fmt.Sprintf("Secret %q cannot be decrypted. Delete it to list the others.", entryErr.Name)
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong master password"
	case errors.Is(err, service.ErrMissingCredential):
		return "The vault has no master password yet"
	case errors.Is(err, service.ErrAlreadyConfigured):
		return "The vault is already set up"
	case errors.Is(err, service.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, service.ErrEmptyPassword):
		return "Master password is required"
	case errors.Is(err, crypto.ErrRandomnessUnavailable):
		return "System randomness is unavailable: " + err.Error()
	case errors.Is(err, store.ErrStorageIO):
		return "Storage failure: " + err.Error()
	}

	return err.Error()
}
