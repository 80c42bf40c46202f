package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	errPasswordsMismatch = errors.New("passwords do not match")
	errNotConfirmed      = errors.New("cancelled")
	errNoSuchEntry       = errors.New("no secret with this name")
)

type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
}

func newRootCommand(info models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: info}

	root := &cobra.Command{
		Use:   "vault",
		Short: "Encrypted local password vault",
		Long: "vault keeps named secrets in a local file, each one sealed with a key\n" +
			"derived from a single master password. Without a subcommand it opens\n" +
			"the interactive terminal UI.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, _ []string) error {
			return app.Run(ctx)
		}),
	}
	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.initCommand(),
		c.addCommand(),
		c.listCommand(),
		c.rmCommand(),
		c.resetCommand(),
		c.versionCommand(),
	)

	return root
}

type appFunc func(ctx context.Context, cmd *cobra.Command, app *client.App, args []string) error

// withApp loads the configuration, opens the vault for the duration of fn
// and closes it afterwards.
func (c *cli) withApp(fn appFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.Load(c.flags)
		if err != nil {
			return err
		}

		app, err := client.NewApp(cmd.Context(), *cfg, c.buildInfo)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, app.Close())
		}()

		return fn(app.Context(cmd.Context()), cmd, app, args)
	}
}

// unlock asks for the master password and verifies it.
func unlock(ctx context.Context, p *prompter, auth service.AuthService) (string, error) {
	master, err := p.secret("Master password: ")
	if err != nil {
		return "", err
	}

	ok, err := auth.Verify(ctx, master)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", service.ErrWrongPassword
	}

	return master, nil
}

func humanize(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		return "the vault has no master password yet, run `vault init`"
	case errors.Is(err, service.ErrAlreadyConfigured):
		return "the vault is already set up, use `vault reset` to start over"
	}

	var entryErr *service.EntryError
	if errors.As(err, &entryErr) {
		return fmt.Sprintf("%v (remove it with `vault rm %q`)", err, entryErr.Name)
	}

	return err.Error()
}
