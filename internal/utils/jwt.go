package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// Sentinel errors returned by [ParseBearerToken].
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// GenerateJWTToken signs an HS256 token shaped like the ones neuPrint issues.
//
// The token carries the email and level claims plus issuer, issued-at and,
// when tokenDuration is positive, an expiry. A zero duration yields a token
// that never expires, like the long-lived tokens on the neuPrint account page.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("neuprint-sandbox", "me@example.org", "readwrite", 0, "secret")
func GenerateJWTToken(issuer, email, level string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || email == "" || signKey == "" || tokenDuration < 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.AccountClaims{
		Email: email,
		Level: level,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString
// with tokenSignKey and returns its claims. Only HS256 is accepted. The
// issuer is checked when tokenIssuer is not empty.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	var claims models.AccountClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Token{}, errors.New("token has no email claim")
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	authorizationHeader = strings.TrimSpace(authorizationHeader)
	if authorizationHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(authorizationHeader, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
