// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// typed context keys, JWT token generation and validation,
// JSON request/response helpers, and an HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authentication middleware stores
// the verified [models.Claims] of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the caller identity.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the caller identity from the context.
//
// Returns ok == false when the request was not authenticated,
// i.e. the value is missing or has an unexpected type.
//
//	claims, ok := utils.GetClaimsFromContext(r.Context())
//	if !ok {
//	    // route is missing the auth middleware
//	}
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
