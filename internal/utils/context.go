// Package utils provides small helpers shared by the sandbox server:
// context keys, JSON responses, bearer token handling and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the auth middleware stores the
// authenticated account's email.
var AccountCtxKey = contextKey("account")

// GetAccountFromContext returns the account email stored by the auth
// middleware. ok is false when the request was not authenticated with a
// verified token.
func GetAccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(AccountCtxKey).(string)
	return account, ok && account != ""
}
