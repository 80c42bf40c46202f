// Package tui is the interactive terminal shell of the vault. It only calls
// into service.VaultServices and never touches key material itself.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.VaultServices
	cfg       config.App
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	clip      clipboardAccess
}

func New(services *service.VaultServices, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
		clip:      systemClipboard{},
	}
}

// Run opens the setup page on a fresh vault and the login page otherwise,
// then blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	configured, err := t.services.Auth.IsConfigured(ctx)
	if err != nil {
		return fmt.Errorf("check vault state: %w", err)
	}

	root := t.newRoot(ctx, configured)
	defer root.sess.lock()

	_, err = tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

func (t *TUI) newRoot(ctx context.Context, configured bool) RootModel {
	sess := newSession(t.logger)
	sess.watchClipboard(t.clip, t.cfg.ClipboardClearAfter)
	auth := t.services.Auth
	secrets := t.services.Secrets

	pages := map[string]tea.Model{
		pageSetup:  NewSetupModel(ctx, auth, sess),
		pageLogin:  NewLoginModel(ctx, auth, sess),
		pageMenu:   NewMenuModel(sess),
		pageAdd:    NewAddModel(ctx, secrets, sess),
		pageEdit:   NewEditModel(ctx, secrets, sess),
		pageList:   NewListModel(ctx, secrets, sess, t.clip, t.cfg.ClipboardClearAfter),
		pageDelete: NewDeleteModel(ctx, secrets, sess),
		pageReset:  NewResetModel(ctx, auth, sess),
	}

	start := pageLogin
	if !configured {
		start = pageSetup
	}

	return NewRootModel(pages, start, sess, t.buildInfo)
}
