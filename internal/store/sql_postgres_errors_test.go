package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Internal},
		{name: "plain error", err: errors.New("boom"), want: Internal},
		{name: "deadline", err: context.DeadlineExceeded, want: Unavailable},
		{name: "wrapped deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: Unavailable},
		{name: "canceled", err: context.Canceled, want: Unavailable},
		{name: "bad conn", err: driver.ErrBadConn, want: Unavailable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: ConstraintViolation},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: ConstraintViolation},
		{name: "not null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: ConstraintViolation},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Unavailable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Unavailable},
		{name: "query canceled", err: &pgconn.PgError{Code: pgerrcode.QueryCanceled}, want: Unavailable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: Internal},
		{name: "invalid text representation", err: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, want: Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestDB_translateError(t *testing.T) {
	db := &DB{}

	assert.NoError(t, db.translateError(nil))
	assert.ErrorIs(t, db.translateError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, db.translateError(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound)

	err := db.translateError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "enrollments_user_id_fkey"})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Contains(t, err.Error(), pgerrcode.ForeignKeyViolation)

	err = db.translateError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "courses_title_key"})
	assert.ErrorIs(t, err, ErrCourseTitleAlreadyExists)

	err = db.translateError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
