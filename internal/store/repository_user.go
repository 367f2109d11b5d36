package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] and run
// every statement under the configured query timeout.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the stored row.
//
// Error handling:
//   - duplicate email → [ErrEmailAlreadyExists]
//   - other constraint violations → [ErrConstraintViolation]
//   - connectivity problems or timeout → [ErrStoreUnavailable]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByID returns [ErrNotFound] when no user has the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserByEmail returns [ErrNotFound] when no user has the given email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.translateError(err)
		if !isNotFound(err) {
			log.Err(err).Str("func", fn).Msg("error selecting user")
		}
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns one page of users matching query, ordered ascending by
// the requested column.
func (r *userRepository) ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListUsersQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0, query.PageSize)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, err
	}

	return users, nil
}

// CountUsers returns the number of users matching the search term of query.
func (r *userRepository) CountUsers(ctx context.Context, query models.ListQuery) (int64, error) {
	sqlQuery, args, err := buildCountUsersQuery(query)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.count(ctx, "*userRepository.CountUsers", sqlQuery, args)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var role string

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &role, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)

	return user, nil
}
