// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvCredentials is the environment variable consulted when no token is
// passed to [New].
const EnvCredentials = "NEUPRINT_APPLICATION_CREDENTIALS"

// LookupFunc has the signature of [os.LookupEnv].
type LookupFunc func(key string) (string, bool)

// ResolveToken returns the bearer token to use for a client.
//
// An empty token falls back to lookup(EnvCredentials). A token containing a
// colon is treated as the JSON document issued by the neuPrint web UI and its
// "token" field is used. All double quotes are stripped from the result.
func ResolveToken(token string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if token == "" {
		token, _ = lookup(EnvCredentials)
	}
	if token == "" {
		return "", configErrorf("no credential available: pass a token or set %s", EnvCredentials)
	}

	if strings.Contains(token, ":") {
		var doc struct {
			Token *string `json:"token"`
		}
		if err := json.Unmarshal([]byte(token), &doc); err != nil || doc.Token == nil {
			return "", configErrorf("malformed credential: provide the entire JSON document or only the token string")
		}
		token = *doc.Token
	}

	return strings.ReplaceAll(token, `"`, ""), nil
}

// TokenClaims is the subset of neuPrint JWT claims the client exposes.
type TokenClaims struct {
	Email     string
	Level     string
	ImageURL  string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseTokenClaims decodes the claims of a neuPrint token without verifying
// its signature. The server remains the only authority on validity.
func ParseTokenClaims(token string) (TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: token is not a JWT: %w", ErrInvalidArgument, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%w: invalid token claims", ErrInvalidArgument)
	}

	var out TokenClaims
	out.Email, _ = claims["email"].(string)
	out.Level, _ = claims["level"].(string)
	out.ImageURL, _ = claims["image-url"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil && !errors.Is(err, jwt.ErrInvalidType) {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
