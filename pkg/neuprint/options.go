// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in [New].
type Option func(*settings) error

type settings struct {
	lookup    LookupFunc
	timeout   time.Duration
	transport http.RoundTripper
	logger    zerolog.Logger
	userAgent string
}

func defaultSettings() settings {
	return settings{
		logger:    zerolog.Nop(),
		userAgent: "neuprint-go",
	}
}

// WithLookupEnv replaces os.LookupEnv for the credential fallback.
func WithLookupEnv(lookup LookupFunc) Option {
	return func(s *settings) error {
		if lookup == nil {
			return fmt.Errorf("%w: nil env lookup", ErrInvalidArgument)
		}
		s.lookup = lookup
		return nil
	}
}

// WithTimeout bounds every request. Without it only context deadlines and
// the transport's own defaults apply.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) error {
		if d < 0 {
			return fmt.Errorf("%w: negative timeout %s", ErrInvalidArgument, d)
		}
		s.timeout = d
		return nil
	}
}

// WithTransport sets the round tripper used for every request.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) error {
		if rt == nil {
			return fmt.Errorf("%w: nil transport", ErrInvalidArgument)
		}
		s.transport = rt
		return nil
	}
}

// WithLogger enables per-request debug logging.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) error {
		s.logger = l
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *settings) error {
		s.userAgent = ua
		return nil
	}
}
