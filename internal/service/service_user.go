package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/crypto"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	pageSize       int

	logger *logger.Logger
}

// NewUserService constructs a UserService that hashes passwords with hasher
// before they reach userRepository.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		pageSize:       cfg.PageSize,
		logger:         logger,
	}
}

// CreateUser hashes the password and stores the account. An empty role
// defaults to student.
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role := request.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() || request.Email == "" || request.Password == "" {
		log.Debug().Str("role", role.String()).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, int64, error) {
	query = normalizeListQuery(query, s.pageSize)

	users, err := s.userRepository.ListUsers(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("user listing failed: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("user counting failed: %w", err)
	}

	return users, total, nil
}

// normalizeListQuery applies the configured page size and a 1-based page default.
func normalizeListQuery(query models.ListQuery, pageSize int) models.ListQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	query.PageSize = pageSize
	return query
}
