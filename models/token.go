package models

import "github.com/golang-jwt/jwt/v5"

// AccountClaims is the claim set carried by neuPrint bearer tokens.
//
// neuPrint issues HS256 tokens whose payload names the account (email), its
// access level and a profile image, next to the registered expiry claim.
type AccountClaims struct {
	// Email identifies the account the token was issued to.
	Email string `json:"email"`

	// Level is the access level, e.g. "readonly", "readwrite" or "admin".
	Level string `json:"level,omitempty"`

	// ImageURL points to the account's profile image.
	ImageURL string `json:"image-url,omitempty"`

	jwt.RegisteredClaims
}

// Token is a signed bearer token together with its decoded claims.
type Token struct {
	// Claims holds the payload the token was signed or verified with.
	Claims AccountClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
