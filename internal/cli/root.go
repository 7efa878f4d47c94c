// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the neuprint command-line tool on top of cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectome-neuprint/neuprint-go/internal/config"
	"github.com/connectome-neuprint/neuprint-go/internal/keychain"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/output"
	"github.com/connectome-neuprint/neuprint-go/internal/service"
	"github.com/connectome-neuprint/neuprint-go/internal/store"
	"github.com/connectome-neuprint/neuprint-go/internal/tui"
	"github.com/connectome-neuprint/neuprint-go/models"
	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

// TokenStore keeps tokens per server between invocations.
type TokenStore interface {
	SaveToken(server, token string) error
	Token(server string) (string, error)
	DeleteToken(server string) error
}

// Options carries the process-level dependencies of the command tree. Zero
// fields are replaced with the real implementations.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	BuildInfo models.AppBuildInfo

	// Transport overrides the HTTP transport of the neuPrint client.
	Transport http.RoundTripper
	// OpenTokenStore opens the credential store. Defaults to the OS keyring.
	OpenTokenStore func() (TokenStore, error)
	// ShowTable runs the interactive viewer.
	ShowTable func(title string, t *neuprint.Table) error
}

func (o *Options) setDefaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.OpenTokenStore == nil {
		o.OpenTokenStore = func() (TokenStore, error) { return keychain.NewManager() }
	}
	if o.ShowTable == nil {
		o.ShowTable = tui.ShowTable
	}
}

type app struct {
	opts  Options
	flags *config.Flags

	cfg *config.CLIConfig
	log *logger.Logger
}

// Execute builds the command tree and runs it with os.Args.
func Execute(ctx context.Context, opts Options) error {
	return NewRootCommand(opts).ExecuteContext(ctx)
}

// NewRootCommand assembles the neuprint command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts.setDefaults()
	a := &app{opts: opts, log: logger.Nop()}

	root := &cobra.Command{
		Use:   "neuprint",
		Short: "Query a neuPrint connectome server",
		Long: `neuprint talks to a neuPrint server over HTTPS.

The server and token are taken from flags, a JSON config file or the
NEUPRINT_SERVER and NEUPRINT_APPLICATION_CREDENTIALS environment variables.
A token saved with "neuprint login" is used when none of those set one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	a.flags = config.BindCLIFlags(root.PersistentFlags())

	for _, m := range metaCommands {
		root.AddCommand(a.newMetaCommand(m))
	}
	root.AddCommand(
		a.newQueryCommand(),
		a.newHistoryCommand(),
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newWhoamiCommand(),
		a.newBuildInfoCommand(),
	)

	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.GetCLIConfig(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewCLILogger("neuprint", cfg.Debug)
	return nil
}

// server returns the normalized server address, which is also the keychain key.
func (a *app) server() (string, error) {
	if err := a.cfg.RequireServer(); err != nil {
		return "", err
	}
	return neuprint.NormalizeServer(a.cfg.Server)
}

// newClient builds a client for the configured server. The token comes from
// the merged configuration, then from the token store.
func (a *app) newClient() (*neuprint.Client, error) {
	server, err := a.server()
	if err != nil {
		return nil, err
	}

	token := a.cfg.Token
	if token == "" {
		token = a.storedToken(server)
	}

	opts, err := a.clientOptions()
	if err != nil {
		return nil, err
	}
	return neuprint.New(server, token, opts...)
}

// clientOptions applies the configured timeout and CA certificate. An
// explicit Options.Transport wins over --ca-cert.
func (a *app) clientOptions() ([]neuprint.Option, error) {
	opts := []neuprint.Option{
		neuprint.WithTimeout(a.cfg.RequestTimeout),
		neuprint.WithLogger(a.log.Logger),
		neuprint.WithUserAgent(a.opts.BuildInfo.UserAgent()),
	}

	transport := a.opts.Transport
	if transport == nil && a.cfg.CACertFile != "" {
		var err error
		if transport, err = newCATransport(a.cfg.CACertFile); err != nil {
			return nil, err
		}
		a.log.Debug().Str("ca_cert", a.cfg.CACertFile).Msg("trusting extra CA certificate")
	}
	if transport != nil {
		opts = append(opts, neuprint.WithTransport(transport))
	}
	return opts, nil
}

func (a *app) storedToken(server string) string {
	tokens, err := a.opts.OpenTokenStore()
	if err != nil {
		a.log.Debug().Err(err).Msg("token store unavailable")
		return ""
	}

	token, err := tokens.Token(server)
	if err != nil {
		if !errors.Is(err, keychain.ErrTokenNotFound) {
			a.log.Warn().Err(err).Msg("could not read stored token")
		}
		return ""
	}
	a.log.Debug().Str("server", server).Msg("using stored token")
	return token
}

// newQueryService wires a client and the history store. The returned
// function closes the store.
func (a *app) newQueryService(ctx context.Context) (*service.QueryService, func(), error) {
	client, err := a.newClient()
	if err != nil {
		return nil, nil, err
	}
	return a.withHistory(ctx, client)
}

func (a *app) withHistory(ctx context.Context, api service.NeuPrintAPI) (*service.QueryService, func(), error) {
	history, err := store.NewHistoryStorage(ctx, a.cfg.Storage, a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("open query history: %w", err)
	}

	closeFn := func() {
		if err := history.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close query history")
		}
	}
	return service.NewQueryService(api, history, a.log), closeFn, nil
}

func (a *app) printer(cmd *cobra.Command) (*output.Printer, error) {
	format, err := output.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(cmd.OutOrStdout(), format), nil
}
