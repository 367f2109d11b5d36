// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides declarative input and output validation.
//
// Constraints are declared as `validate` struct tags on the request and
// response models in the models package and enforced by go-playground/validator.
// A failed check is reported as a *[ValidationError] that lists every
// violated constraint and matches [ErrValidation] under errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
