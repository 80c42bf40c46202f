package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

var (
	// ErrMissingCredential is returned by Verify and Reset before the vault
	// has been set up.
	ErrMissingCredential = errors.New("master password is not configured")

	// ErrAlreadyConfigured is returned by Setup when a master credential
	// already exists. Use Reset to start over.
	ErrAlreadyConfigured = errors.New("master password is already configured")

	// ErrWrongPassword is returned by Reset when the password does not match.
	ErrWrongPassword = errors.New("wrong password")

	ErrEmptyName     = validators.ErrEmptyName
	ErrEmptyPassword = validators.ErrEmptyPassword
)

// EntryError reports which entry a listing failed on. Unwrap exposes the
// underlying cause, so errors.Is still matches crypto errors.
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
