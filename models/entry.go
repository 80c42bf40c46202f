// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is one stored secret as it lives on disk: a user-chosen name and the
// opaque encrypted envelope.
type Entry struct {
	Name     string
	Envelope []byte
}

// Secret is a decrypted entry returned to the presentation layer.
type Secret struct {
	Name  string
	Value string
}
