// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// CLIConfig is the neuprint command-line view of [StructuredConfig].
type CLIConfig struct {
	Server         string
	Token          string
	RequestTimeout time.Duration
	CACertFile     string
	Debug          bool
	OutputFormat   string
	Storage        Storage
}

// RequireServer reports ErrMissingServer when no server address was
// configured by any source.
func (cfg *CLIConfig) RequireServer() error {
	if cfg.Server == "" {
		return ErrMissingServer
	}
	return nil
}

// GetCLIConfig builds and validates the CLI view from the merged structured
// configuration.
func GetCLIConfig(flags *Flags) (*CLIConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cliCfg := &CLIConfig{
		Server:         cfg.Client.Server,
		Token:          cfg.Client.Token,
		RequestTimeout: cfg.Client.RequestTimeout,
		CACertFile:     cfg.Client.CACertFile,
		Debug:          cfg.Client.Debug,
		OutputFormat:   cfg.Output.Format,
		Storage:        cfg.Storage,
	}

	return cliCfg, cliCfg.validate()
}

// SandboxConfig is the sandbox server view of [StructuredConfig].
type SandboxConfig struct {
	Address         string
	FixturesPath    string
	SignKey         string
	TLSCertFile     string
	TLSKeyFile      string
	ShutdownTimeout time.Duration
	Debug           bool
}

// GetSandboxConfig builds and validates the sandbox view from the merged
// structured configuration.
func GetSandboxConfig(flags *Flags) (*SandboxConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sandboxCfg := &SandboxConfig{
		Address:         cfg.Sandbox.Address,
		FixturesPath:    cfg.Sandbox.FixturesPath,
		SignKey:         cfg.Sandbox.SignKey,
		TLSCertFile:     cfg.Sandbox.TLSCertFile,
		TLSKeyFile:      cfg.Sandbox.TLSKeyFile,
		ShutdownTimeout: cfg.Sandbox.ShutdownTimeout,
		Debug:           cfg.Client.Debug,
	}

	return sandboxCfg, sandboxCfg.validate()
}
