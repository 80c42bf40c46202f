package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

const maskedValue = "••••••••"

func (c *cli) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the master password of a new vault",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, _ []string) error {
			auth := app.Services().Auth

			configured, err := auth.IsConfigured(ctx)
			if err != nil {
				return err
			}
			if configured {
				return service.ErrAlreadyConfigured
			}

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			password, err := p.secret("New master password: ")
			if err != nil {
				return err
			}
			repeat, err := p.secret("Repeat master password: ")
			if err != nil {
				return err
			}
			if password != repeat {
				return errPasswordsMismatch
			}

			if err = auth.Setup(ctx, password); err != nil {
				return err
			}
			vaultID, err := auth.VaultID(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Vault %s created\n", vaultID)
			return nil
		}),
	}
}

func (c *cli) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Store a secret, replacing any secret with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, args []string) error {
			name := args[0]
			svc := app.Services()
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			master, err := unlock(ctx, p, svc.Auth)
			if err != nil {
				return err
			}
			value, err := p.secret(fmt.Sprintf("Secret for %q: ", name))
			if err != nil {
				return err
			}

			if err = svc.Secrets.AddOrUpdate(ctx, master, name, value); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q\n", name)
			return nil
		}),
	}
}

func (c *cli) listCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Decrypt and print every secret",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, _ []string) error {
			svc := app.Services()
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			master, err := unlock(ctx, p, svc.Auth)
			if err != nil {
				return err
			}

			secrets, err := svc.Secrets.List(ctx, master)
			if err != nil {
				return err
			}
			if len(secrets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No secrets")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "VALUE")
			for _, s := range secrets {
				value := maskedValue
				if reveal {
					value = s.Value
				}
				t.Row(s.Name, value)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		}),
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print secret values instead of a mask")

	return cmd
}

func (c *cli) rmCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a secret",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, args []string) error {
			name := args[0]
			svc := app.Services()
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			if _, err := unlock(ctx, p, svc.Auth); err != nil {
				return err
			}

			_, found, err := svc.Secrets.GetRaw(ctx, name)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %q", errNoSuchEntry, name)
			}

			if !yes {
				ok, err := p.confirm(fmt.Sprintf("Delete %q?", name))
				if err != nil {
					return err
				}
				if !ok {
					return errNotConfirmed
				}
			}

			if err = svc.Secrets.Delete(ctx, name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func (c *cli) resetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every secret and the master password",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(ctx context.Context, cmd *cobra.Command, app *client.App, _ []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			password, err := p.secret("Current master password: ")
			if err != nil {
				return err
			}

			if !yes {
				ok, err := p.confirm("Erase the whole vault?")
				if err != nil {
					return err
				}
				if !ok {
					return errNotConfirmed
				}
			}

			if err = app.Services().Auth.Reset(ctx, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Vault erased, run `vault init` to start over")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
