// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"unicode/utf8"
)

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEntryName)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidEntryName, name)
	}
	return nil
}

// record is one entry copied out of a read transaction, so callbacks never
// run while the engine holds a read lock or the only SQLite connection.
type record struct {
	name     string
	envelope []byte
}
