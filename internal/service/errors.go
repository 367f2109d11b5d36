package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request reaches a service with
	// required fields missing or out of range.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongCredentials is returned by Login for an unknown email or a
	// mismatching password.
	ErrWrongCredentials = errors.New("wrong email or password")
	// ErrForbidden is returned when the caller's role does not allow the action.
	ErrForbidden = errors.New("insufficient role")

	// ErrTokenIsExpired is returned when a token's expiry has passed.
	ErrTokenIsExpired = errors.New("token is expired")
	// ErrTokenIsExpiredOrInvalid is returned for tokens that fail signature,
	// issuer or claim checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	// ErrTokenCreationFailed wraps signing failures while issuing a token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrPasswordHashingFailed wraps hasher failures while creating a user.
	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
