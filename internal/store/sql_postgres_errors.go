package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It decides which domain error a failed database operation surfaces as.
type ErrorClassification int

const (
	// Internal is the default classification for unrecognised errors,
	// syntax errors, and data exceptions.
	Internal ErrorClassification = iota

	// ConstraintViolation indicates an integrity constraint rejected the write.
	ConstraintViolation

	// Unavailable indicates the database could not serve the statement in time
	// or at all.
	Unavailable
)

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// accessed through the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Deadlines, cancellations, broken connections and network failures are
// [Unavailable]. PostgreSQL errors are delegated to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Internal
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		pgconn.Timeout(err) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	return Internal
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - Class 23 (integrity constraint violation) → [ConstraintViolation]
//   - Class 08 (connection exception), 53 (insufficient resources),
//     57 (operator intervention, incl. statement timeout) → [Unavailable]
//   - anything else → [Internal]
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return ConstraintViolation
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return Unavailable
	default:
		return Internal
	}
}
