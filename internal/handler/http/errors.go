// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header uses a scheme other than Bearer or carries extra parts.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer prefix but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// errMissingClaims means a role check ran on a route without authentication.
var errMissingClaims = errors.New("no caller identity in request context")

// errInvalidResponse means a handler produced a body violating its own schema.
var errInvalidResponse = errors.New("response does not match its schema")
