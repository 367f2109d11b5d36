package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedClaims is returned when a token carries an empty subject or an
// unknown role.
var ErrMalformedClaims = errors.New("token claims are malformed")

// TokenClaims is the claim set signed into every access token.
// Subject holds the user id; Role holds the caller's access level.
type TokenClaims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and [TokenClaims]
// for claim access.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity extracts the caller identity from the token claims.
func (t *Token) Identity() (Claims, error) {
	if t.Subject == "" || !t.Role.Valid() {
		return Claims{}, ErrMalformedClaims
	}
	return Claims{UserID: t.Subject, Role: t.Role}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Claims is the verified identity attached to an authenticated request.
type Claims struct {
	UserID string
	Role   Role
}
