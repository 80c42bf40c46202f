package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// session holds the unlocked state shared by every page. The master password
// lives here only between login and exit or reset.
type session struct {
	base    *logger.Logger
	log     *logger.Logger
	master  string
	vaultID string

	// clip and lastCopied let lock wipe a secret whose clear timer never
	// fired because the program quit first.
	clip        clipboardAccess
	clearOnExit bool
	lastCopied  string
}

func newSession(base *logger.Logger) *session {
	return &session{base: base, log: base}
}

// watchClipboard enables clearing on lock. A non-positive clearAfter means
// clearing is off and copied values are left alone.
func (s *session) watchClipboard(clip clipboardAccess, clearAfter time.Duration) {
	s.clip = clip
	s.clearOnExit = clearAfter > 0
}

func (s *session) rememberCopy(value string) {
	s.lastCopied = value
}

func (s *session) unlock(master, vaultID string) {
	s.master = master
	s.vaultID = vaultID
	s.log = &logger.Logger{Logger: s.base.With().Str("vault_id", vaultID).Logger()}
	s.log.Info().Msg("vault unlocked")
}

func (s *session) lock() {
	s.clearClipboard()
	if s.master != "" {
		s.log.Info().Msg("vault locked")
	}
	s.master = ""
	s.vaultID = ""
	s.log = s.base
}

func (s *session) unlocked() bool {
	return s.master != ""
}

// context attaches the session logger so the engine logs carry vault_id.
func (s *session) context(ctx context.Context) context.Context {
	return s.log.WithContext(ctx)
}

func (s *session) clearClipboard() {
	value := s.lastCopied
	s.lastCopied = ""
	if value == "" || !s.clearOnExit || s.clip == nil {
		return
	}

	cleared, err := clearIfUnchanged(s.clip, value)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to clear clipboard")
		return
	}
	if cleared {
		s.log.Debug().Msg("clipboard cleared on lock")
	}
}
