// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestSecretSvc(t *testing.T, ctrl *gomock.Controller, parallelism int) (SecretService, *mock.MockEntryRepository, *mock.MockEnvelopeCipher) {
	t.Helper()
	entries := mock.NewMockEntryRepository(ctrl)
	cipher := mock.NewMockEnvelopeCipher(ctrl)
	return NewSecretService(entries, cipher, parallelism, logger.Nop()), entries, cipher
}

// forEachOver makes a ForEach expectation replay the given entries.
func forEachOver(entries ...models.Entry) func(context.Context, func(string, []byte) error) error {
	return func(_ context.Context, fn func(string, []byte) error) error {
		for _, e := range entries {
			if err := fn(e.Name, e.Envelope); err != nil {
				return err
			}
		}
		return nil
	}
}

// ── AddOrUpdate ──────────────────────────────────────────────────────────────

func TestSecretService_AddOrUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, cipher := newTestSecretSvc(t, ctrl, 1)
	ctx := context.Background()

	gomock.InOrder(
		cipher.EXPECT().Seal([]byte("Blueblue"), []byte("Floroma")).Return([]byte("sealed"), nil),
		entries.EXPECT().Insert(ctx, "Gmail", []byte("sealed")).Return(nil),
	)

	require.NoError(t, svc.AddOrUpdate(ctx, "Floroma", "Gmail", "Blueblue"))
}

func TestSecretService_AddOrUpdate_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSecretSvc(t, ctrl, 1)

	err := svc.AddOrUpdate(context.Background(), "Floroma", "", "Blueblue")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSecretService_AddOrUpdate_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, cipher := newTestSecretSvc(t, ctrl, 1)

	cipher.EXPECT().Seal(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrRandomnessUnavailable)

	err := svc.AddOrUpdate(context.Background(), "Floroma", "Gmail", "Blueblue")
	assert.ErrorIs(t, err, crypto.ErrRandomnessUnavailable)
}

func TestSecretService_AddOrUpdate_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, cipher := newTestSecretSvc(t, ctrl, 1)

	cipher.EXPECT().Seal(gomock.Any(), gomock.Any()).Return([]byte("sealed"), nil)
	entries.EXPECT().Insert(gomock.Any(), "Gmail", gomock.Any()).Return(store.ErrStorageIO)

	err := svc.AddOrUpdate(context.Background(), "Floroma", "Gmail", "Blueblue")
	assert.ErrorIs(t, err, store.ErrStorageIO)
}

// ── GetRaw / Delete ──────────────────────────────────────────────────────────

func TestSecretService_GetRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().Get(gomock.Any(), "Gmail").Return([]byte("sealed"), nil)
	entries.EXPECT().Get(gomock.Any(), "absent").Return(nil, store.ErrEntryNotFound)
	entries.EXPECT().Get(gomock.Any(), "broken").Return(nil, store.ErrStorageIO)

	raw, ok, err := svc.GetRaw(context.Background(), "Gmail")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("sealed"), raw)

	raw, ok, err = svc.GetRaw(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)

	_, ok, err = svc.GetRaw(context.Background(), "broken")
	assert.ErrorIs(t, err, store.ErrStorageIO)
	assert.False(t, ok)
}

func TestSecretService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().Remove(gomock.Any(), "Gmail").Return(nil)
	entries.EXPECT().Remove(gomock.Any(), "broken").Return(store.ErrStorageIO)

	require.NoError(t, svc.Delete(context.Background(), "Gmail"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "broken"), store.ErrStorageIO)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestSecretService_List(t *testing.T) {
	for _, parallelism := range []int{1, 4} {
		ctrl := gomock.NewController(t)
		svc, entries, cipher := newTestSecretSvc(t, ctrl, parallelism)

		entries.EXPECT().ForEach(gomock.Any(), gomock.Any()).DoAndReturn(forEachOver(
			models.Entry{Name: "GitHub", Envelope: []byte("e1")},
			models.Entry{Name: "Gmail", Envelope: []byte("e2")},
		))
		cipher.EXPECT().Open([]byte("e1"), []byte("Floroma")).Return([]byte("octocat"), nil)
		cipher.EXPECT().Open([]byte("e2"), []byte("Floroma")).Return([]byte("Blueblue"), nil)

		secrets, err := svc.List(context.Background(), "Floroma")
		require.NoError(t, err)
		assert.Equal(t, []models.Secret{
			{Name: "GitHub", Value: "octocat"},
			{Name: "Gmail", Value: "Blueblue"},
		}, secrets)
	}
}

func TestSecretService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().ForEach(gomock.Any(), gomock.Any()).DoAndReturn(forEachOver())

	secrets, err := svc.List(context.Background(), "Floroma")
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestSecretService_List_FailFastWithEntryName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, cipher := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().ForEach(gomock.Any(), gomock.Any()).DoAndReturn(forEachOver(
		models.Entry{Name: "GitHub", Envelope: []byte("e1")},
		models.Entry{Name: "Gmail", Envelope: []byte("bad")},
		models.Entry{Name: "Slack", Envelope: []byte("e3")},
	))
	cipher.EXPECT().Open([]byte("e1"), gomock.Any()).Return([]byte("octocat"), nil)
	cipher.EXPECT().Open([]byte("bad"), gomock.Any()).Return(nil, crypto.ErrAuthenticationFailure)
	// Slack is never opened on the sequential path.

	secrets, err := svc.List(context.Background(), "Floroma")
	assert.Nil(t, secrets)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, "Gmail", entryErr.Name)
	assert.Contains(t, err.Error(), `entry "Gmail"`)
}

func TestSecretService_List_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().ForEach(gomock.Any(), gomock.Any()).Return(store.ErrInvalidEntryName)

	_, err := svc.List(context.Background(), "Floroma")
	assert.ErrorIs(t, err, store.ErrInvalidEntryName)
}

func TestSecretService_List_InvalidUTF8PlaintextIsReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, cipher := newTestSecretSvc(t, ctrl, 1)

	entries.EXPECT().ForEach(gomock.Any(), gomock.Any()).DoAndReturn(forEachOver(
		models.Entry{Name: "bin", Envelope: []byte("e")},
	))
	cipher.EXPECT().Open(gomock.Any(), gomock.Any()).Return([]byte{'o', 'k', 0xff}, nil)

	secrets, err := svc.List(context.Background(), "Floroma")
	require.NoError(t, err)
	assert.Equal(t, "ok\uFFFD", secrets[0].Value)
}

// ── EntryError ───────────────────────────────────────────────────────────────

func TestEntryError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&EntryError{Name: "Gmail", Err: cause})

	assert.Equal(t, `entry "Gmail": boom`, err.Error())
	assert.ErrorIs(t, err, cause)
}
