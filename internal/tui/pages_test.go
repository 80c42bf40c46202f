package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

func TestAddModel_Saves(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	secrets.EXPECT().AddOrUpdate(gomock.Any(), "Floroma", "Gmail", "Blueblue").Return(nil)

	m := NewAddModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.form.inputs[0].SetValue("Gmail")
	m.Update(keyPress("tab"))
	m.form.inputs[1].SetValue("Blueblue")

	_, cmd := m.Update(keyPress("enter"))
	assert.True(t, m.submitting)
	_, cmd = m.Update(run(t, cmd))

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, notice{text: `Saved "Gmail"`}, nav.Payload)
}

func TestAddModel_ValidationErrorGoesToOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	secrets.EXPECT().AddOrUpdate(gomock.Any(), "Floroma", "", "x").Return(service.ErrEmptyName)

	m := NewAddModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.form.inputs[1].SetValue("x")
	m.form.focus = 1

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(run(t, cmd))
	require.ErrorIs(t, requireShowError(t, cmd), service.ErrEmptyName)
	assert.False(t, m.submitting)
}

func TestAddModel_Esc(t *testing.T) {
	m := NewAddModel(t.Context(), nil, unlockedSession())
	m.Init()

	_, cmd := m.Update(keyPress("esc"))
	requireNavigate(t, cmd, pageMenu)
}

func TestEditModel_ReplacesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	gomock.InOrder(
		secrets.EXPECT().GetRaw(gomock.Any(), "Gmail").Return([]byte("envelope"), true, nil),
		secrets.EXPECT().AddOrUpdate(gomock.Any(), "Floroma", "Gmail", "Greengreen").Return(nil),
	)

	m := NewEditModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.name.SetValue("Gmail")

	_, cmd := m.Update(keyPress("enter"))
	m.Update(run(t, cmd))
	require.Equal(t, editStageValue, m.stage)
	assert.Contains(t, m.View(), "Gmail")

	m.value.SetValue("Greengreen")
	_, cmd = m.Update(keyPress("enter"))
	_, cmd = m.Update(run(t, cmd))

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, notice{text: `Updated "Gmail"`}, nav.Payload)
}

func TestEditModel_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	secrets.EXPECT().GetRaw(gomock.Any(), "Yahoo").Return(nil, false, nil)

	m := NewEditModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.name.SetValue("Yahoo")

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(run(t, cmd))

	err := requireShowError(t, cmd)
	require.ErrorIs(t, err, errNoSuchEntry)
	assert.Contains(t, err.Error(), `"Yahoo"`)
	assert.Equal(t, editStageName, m.stage)
}

func TestEditModel_EscFromValueGoesBackToName(t *testing.T) {
	m := NewEditModel(t.Context(), nil, unlockedSession())
	m.Init()
	m.stage = editStageValue
	m.target = "Gmail"

	m.Update(keyPress("esc"))
	assert.Equal(t, editStageName, m.stage)
	assert.Empty(t, m.target)

	_, cmd := m.Update(keyPress("esc"))
	requireNavigate(t, cmd, pageMenu)
}

func TestDeleteModel_ConfirmedDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	gomock.InOrder(
		secrets.EXPECT().GetRaw(gomock.Any(), "Gmail").Return([]byte("envelope"), true, nil),
		secrets.EXPECT().Delete(gomock.Any(), "Gmail").Return(nil),
	)

	m := NewDeleteModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.name.SetValue("Gmail")

	_, cmd := m.Update(keyPress("enter"))
	m.Update(run(t, cmd))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "Gmail"?`)

	_, cmd = m.Update(keyPress("y"))
	assert.False(t, m.showConfirm)
	_, cmd = m.Update(run(t, cmd))

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, notice{text: `Deleted "Gmail"`}, nav.Payload)
}

func TestDeleteModel_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	secrets.EXPECT().GetRaw(gomock.Any(), "Gmail").Return([]byte("envelope"), true, nil)

	m := NewDeleteModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.name.SetValue("Gmail")

	_, cmd := m.Update(keyPress("enter"))
	m.Update(run(t, cmd))

	_, cmd = m.Update(keyPress("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pending)
}

func TestDeleteModel_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretService(ctrl)
	secrets.EXPECT().GetRaw(gomock.Any(), "Yahoo").Return(nil, false, nil)

	m := NewDeleteModel(t.Context(), secrets, unlockedSession())
	m.Init()
	m.name.SetValue("Yahoo")

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(run(t, cmd))

	require.ErrorIs(t, requireShowError(t, cmd), errNoSuchEntry)
	assert.False(t, m.showConfirm)
}

func TestResetModel_ErasesAndLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Reset(gomock.Any(), "Floroma").Return(nil)

	sess := unlockedSession()
	m := NewResetModel(t.Context(), auth, sess)
	m.Init()
	m.password.SetValue("Floroma")

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)

	_, cmd = m.Update(keyPress("y"))
	_, cmd = m.Update(run(t, cmd))

	nav := requireNavigate(t, cmd, pageSetup)
	assert.Equal(t, notice{text: "Vault erased"}, nav.Payload)
	assert.False(t, sess.unlocked())
}

func TestResetModel_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Reset(gomock.Any(), "Bloromo").Return(service.ErrWrongPassword)

	sess := unlockedSession()
	m := NewResetModel(t.Context(), auth, sess)
	m.Init()
	m.password.SetValue("Bloromo")

	m.Update(keyPress("enter"))
	_, cmd := m.Update(keyPress("y"))
	_, cmd = m.Update(run(t, cmd))

	require.ErrorIs(t, requireShowError(t, cmd), service.ErrWrongPassword)
	assert.True(t, sess.unlocked())
}

func TestResetModel_EmptyPassword(t *testing.T) {
	m := NewResetModel(t.Context(), nil, unlockedSession())
	m.Init()

	_, cmd := m.Update(keyPress("enter"))
	require.ErrorIs(t, requireShowError(t, cmd), service.ErrEmptyPassword)
	assert.False(t, m.showConfirm)
}
