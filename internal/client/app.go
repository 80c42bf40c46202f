package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Role is the "role" field of every log entry written by the client.
const Role = "go-pass-vault"

// App owns one opened vault for the lifetime of the process.
type App struct {
	cfg       config.StructuredConfig
	buildInfo models.AppBuildInfo

	logger    *logger.Logger
	logCloser io.Closer
	storages  *store.Storages
	services  *service.VaultServices
}

var _ Client = (*App)(nil)

// NewApp opens the log file and the vault database described by cfg. A log
// file that cannot be opened is reported on stderr and logging is disabled;
// a vault that cannot be opened is an error.
func NewApp(ctx context.Context, cfg config.StructuredConfig, buildInfo models.AppBuildInfo) (*App, error) {
	log, logCloser, err := logger.NewFileLogger(Role, cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log warning: %v\n", err)
	}

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Str("path", cfg.Storage.Path).
		Int("parallelism", cfg.Workers.DecryptParallelism).
		Msg("opening vault")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("error opening vault")
		_ = logCloser.Close()
		return nil, fmt.Errorf("open vault: %w", err)
	}

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		logCloser: logCloser,
		storages:  storages,
		services:  service.NewVaultServices(storages, cfg, log),
	}, nil
}

// Services exposes the engine for one-shot commands.
func (a *App) Services() *service.VaultServices {
	return a.services
}

// Context returns ctx with the application logger attached.
func (a *App) Context(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}

// Run starts the terminal UI. SIGTERM and SIGHUP end the session the same
// way as quitting from the menu.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(a.Context(ctx), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a.logger.Info().Msg("starting terminal ui")
	ui := tui.New(a.services, a.cfg.App, a.buildInfo, a.logger)
	if err := ui.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("terminal ui stopped with error")
		return err
	}
	a.logger.Info().Msg("terminal ui stopped")

	return nil
}

func (a *App) Close() error {
	err := a.storages.Close()
	if err != nil {
		a.logger.Err(err).Str("func", "App.Close").Msg("error closing vault")
	}
	return errors.Join(err, a.logCloser.Close())
}
