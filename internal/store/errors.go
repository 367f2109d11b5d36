package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record was not found")

	// ErrConstraintViolation is returned when a write is rejected by a
	// uniqueness, foreign-key, not-null or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStoreUnavailable is returned when the database cannot be reached,
	// refuses connections, or a statement exceeds its timeout.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Specific constraint violations. Both match [ErrConstraintViolation].
var (
	// ErrEmailAlreadyExists is returned when a user with the same email exists.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrConstraintViolation)

	// ErrCourseTitleAlreadyExists is returned when a course with the same title exists.
	ErrCourseTitleAlreadyExists = fmt.Errorf("%w: course title already exists", ErrConstraintViolation)
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// constraintErrors maps PostgreSQL constraint names declared in the
// migrations to domain errors.
var constraintErrors = map[string]error{
	"users_email_key":   ErrEmailAlreadyExists,
	"courses_title_key": ErrCourseTitleAlreadyExists,
}
