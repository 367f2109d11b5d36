package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the process-wide connection pool. It is created once in main and
// injected into every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	queryTimeout       time.Duration
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool sized from cfg and verifies it
// with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	db := NewDB(conn, cfg.QueryTimeout, log)

	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, queryTimeout time.Duration, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		queryTimeout:       queryTimeout,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping checks the connection within the query timeout.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return db.translateError(err)
	}
	return nil
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// translateError converts a driver error into the package's domain errors.
func (db *DB) translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	classificator := db.errorClassificator
	if classificator == nil {
		classificator = NewPostgresErrorClassifier()
	}

	switch classificator.Classify(err) {
	case ConstraintViolation:
		if specific, ok := constraintErrors[constraintName(err)]; ok {
			return specific
		}
		return fmt.Errorf("%w: %s", ErrConstraintViolation, postgresError(err))
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// count runs a single-value COUNT statement.
func (db *DB) count(ctx context.Context, fn, query string, args []any) (int64, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		err = db.translateError(err)
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error counting rows")
		return 0, err
	}

	return total, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
