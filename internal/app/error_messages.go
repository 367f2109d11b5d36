// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// course API handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of error responses. Keeping them in one place ensures consistent
// wording throughout the API.
package app

const (
	// MsgValidationFailed accompanies a 400 whose details list the failed
	// constraints.
	MsgValidationFailed = "validation failed"

	// MsgInvalidDataProvided is returned when input passes schema validation
	// but is still unusable (e.g. an unknown role).
	MsgInvalidDataProvided = "invalid data provided"

	MsgEmptyBody     = "request body is empty"
	MsgMalformedBody = "request body is not valid JSON"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingToken covers an absent, empty or non-Bearer Authorization header.
	MsgMissingToken = "missing or malformed Authorization header"

	// MsgAccessDenied is returned when the caller's role does not permit
	// the operation.
	MsgAccessDenied = "access denied"

	MsgNotFound = "record was not found"

	MsgEmailAlreadyExists       = "email already exists"
	MsgCourseTitleAlreadyExists = "course title already exists"

	// MsgConflict is returned for constraint violations without a more
	// specific message.
	MsgConflict = "request conflicts with existing data"

	// MsgServiceUnavailable is returned when the database cannot be reached
	// or a statement timed out. The client may retry later.
	MsgServiceUnavailable = "service is temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
