package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload of a PressPay session token.
//
// Besides the registered claims (iss, sub, iat, exp) it carries the user's
// id, role and name so that authenticated handlers never have to hit the
// database to learn who is calling.
type TokenClaims struct {
	// UserID duplicates the "sub" claim as a number.
	UserID int64 `json:"userId"`

	// Role is the caller's role at the time the token was issued.
	Role Role `json:"role"`

	// Name is the caller's display name at the time the token was issued.
	Name string `json:"name"`

	jwt.RegisteredClaims
}

// Identity converts the claims into the identity attached to request contexts.
func (c *TokenClaims) Identity() Identity {
	return Identity{
		ID:   c.UserID,
		Role: c.Role,
		Name: c.Name,
	}
}

// Token wraps a signed session token.
//
// It embeds [jwt.Token] for access to the parsed header and claims, keeps
// the compact serialized form in SignedString and the decoded caller in
// Identity.
type Token struct {
	// Token is the underlying JWT. Only the compact string leaves the server.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Identity is the caller encoded in the token's claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
