// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

var outputFormats = []string{"json", "table", "csv"}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Output.Format != "" && !isOutputFormat(cfg.Output.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidOutputFormat, cfg.Output.Format, strings.Join(outputFormats, ", "))
	}

	if cfg.Client.RequestTimeout < 0 || cfg.Sandbox.ShutdownTimeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if !isOutputFormat(cfg.OutputFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, cfg.OutputFormat)
	}

	return nil
}

func (cfg *SandboxConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Address); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSandboxAddress, err)
	}

	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return ErrIncompleteTLSPair
	}

	return nil
}

func isOutputFormat(s string) bool {
	for _, f := range outputFormats {
		if strings.EqualFold(s, f) {
			return true
		}
	}
	return false
}
