package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

var ErrNoToken = errors.New("no token given")

// noEnv keeps login from silently saving whatever the environment holds.
func noEnv(string) (string, bool) { return "", false }

func (a *app) newLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save a token for the server in the OS keychain",
		Long: `Save a neuPrint token for the configured server in the OS keychain.

The token is taken from --token, or read from stdin. Copy it from the
account page of the neuPrint web interface. Before saving, the token is
checked with a request to /api/version unless --skip-verify is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			raw := a.cfg.Token
			if raw == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Paste token: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return ErrNoToken
				}
				raw = strings.TrimSpace(line)
			}

			token, err := neuprint.ResolveToken(raw, noEnv)
			if err != nil {
				return err
			}

			if !skipVerify {
				opts, err := a.clientOptions()
				if err != nil {
					return err
				}
				client, err := neuprint.New(server, token, opts...)
				if err != nil {
					return err
				}
				if _, err := client.FetchVersion(cmd.Context()); err != nil {
					return fmt.Errorf("token check failed: %w", err)
				}
			}

			tokens, err := a.opts.OpenTokenStore()
			if err != nil {
				return err
			}
			if err := tokens.SaveToken(server, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved for %s\n", server)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the token without contacting the server")

	return cmd
}

func (a *app) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved token for the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			tokens, err := a.opts.OpenTokenStore()
			if err != nil {
				return err
			}
			if err := tokens.DeleteToken(server); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged out of %s\n", server)
			return nil
		},
	}
}

func (a *app) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the current token belongs to",
		Long: `Decode the current token and show its account details.

The token is not sent to the server; the details are read from the token
itself and are not verified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			claims, err := client.Claims()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server:  %s\n", client.Server())
			fmt.Fprintf(out, "Email:   %s\n", valueOrDash(claims.Email))
			fmt.Fprintf(out, "Level:   %s\n", valueOrDash(claims.Level))

			switch {
			case claims.ExpiresAt.IsZero():
				fmt.Fprintln(out, "Expires: never")
			case claims.Expired(time.Now()):
				fmt.Fprintf(out, "Expires: %s (expired)\n", claims.ExpiresAt.Local().Format(time.RFC3339))
			default:
				fmt.Fprintf(out, "Expires: %s\n", claims.ExpiresAt.Local().Format(time.RFC3339))
			}
			return nil
		},
	}
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
