package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/crypto"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the Argon2id hashes stored by
// UserRepository and issues HS256 access tokens.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongCredentials if no user has the email or the password does not
//     match. Both cases are indistinguishable to the caller.
//   - A wrapped storage error if the lookup fails for another reason.
func (a *authService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Debug().Msg("empty email or password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Msg("login attempt for unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's id and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Claims{UserID: user.ID, Role: user.Role}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the caller identity.
//
// An expired token yields ErrTokenIsExpired; any other failure (bad
// signature, foreign issuer, unexpected algorithm, malformed claims) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Claims{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	identity, err := token.Identity()
	if err != nil {
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}
