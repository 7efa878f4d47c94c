package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("sandbox", "me@example.org", "readwrite", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty SignedString")
	}
	if token.String() != token.SignedString {
		t.Error("String() must return the signed form")
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "sandbox")
	if err != nil {
		t.Fatalf("expected token to validate, got: %v", err)
	}
	if parsed.Claims.Email != "me@example.org" {
		t.Errorf("expected email me@example.org, got %s", parsed.Claims.Email)
	}
	if parsed.Claims.Level != "readwrite" {
		t.Errorf("expected level readwrite, got %s", parsed.Claims.Level)
	}
	if parsed.Claims.ExpiresAt == nil {
		t.Error("expected exp claim")
	}
}

func TestGenerateJWTToken_NoExpiry(t *testing.T) {
	token, err := GenerateJWTToken("sandbox", "me@example.org", "", 0, "k")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Claims.ExpiresAt != nil {
		t.Error("expected no exp claim for zero duration")
	}
	if _, err := ValidateAndParseJWTToken(token.SignedString, "k", ""); err != nil {
		t.Fatalf("token without exp must validate: %v", err)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.c", time.Hour, "k"},
		{"empty email", "i", "", time.Hour, "k"},
		{"empty key", "i", "a@b.c", time.Hour, ""},
		{"negative duration", "i", "a@b.c", -time.Second, "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.email, "", tt.duration, tt.key); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	good, err := GenerateJWTToken("sandbox", "me@example.org", "", time.Hour, "right")
	if err != nil {
		t.Fatal(err)
	}

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "me@example.org",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("right"))
	if err != nil {
		t.Fatal(err)
	}

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"level": "admin"}).SignedString([]byte("right"))
	if err != nil {
		t.Fatal(err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "me@example.org"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", good.SignedString, "wrong", ""},
		{"wrong issuer", good.SignedString, "right", "someone-else"},
		{"expired", expired, "right", ""},
		{"no email", noEmail, "right", ""},
		{"alg none", unsigned, "right", ""},
		{"garbage", "not.a.jwt", "right", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}

	_, err = ValidateAndParseJWTToken(expired, "right", "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: ErrEmptyAuthorizationHeader},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.header), func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
