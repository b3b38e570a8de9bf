// Package services contains the business logic of the auth-service. This
// file implements the Service orchestrating registration, login, token
// validation, and activity tracking over a user directory.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecommerce/auth-service/internal/auth"
	"github.com/ecommerce/auth-service/internal/common"
	"github.com/ecommerce/auth-service/internal/config"
	"github.com/ecommerce/auth-service/internal/logging"
	"github.com/ecommerce/auth-service/internal/models"
	"github.com/ecommerce/auth-service/internal/passwordx"
	"github.com/ecommerce/auth-service/internal/repository/users"
	"github.com/ecommerce/auth-service/internal/validation"
)

// Service provides the credential operations:
//   - Register: validate, hash, and store a new user
//   - Login: verify credentials and issue a signed token
//   - ValidateToken: check a presented token and return its claims
//   - RecordActivity / IncrementLogin: explicit engagement tracking
type Service struct {
	repo   users.Repository
	tokens *auth.TokenManager
	hasher *passwordx.Hasher
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

// NewService constructs a Service from the directory and server config.
func NewService(repo users.Repository, cfg *config.Config, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		repo:   repo,
		tokens: auth.NewTokenManager([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
		hasher: passwordx.NewHasher(cfg.BcryptCost),
		logger: logger,
		now:    time.Now,
	}
}

// WithIDGenerator installs a generator for new user IDs. Without one,
// Register leaves the ID empty and identifiers are the caller's concern.
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.newID = gen
	return s
}

// WithClock replaces the time source. Test seam.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.tokens.WithClock(now)
	return s
}

// TokenManager exposes the underlying issuer/verifier.
func (s *Service) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates a new user. The email must be unused and well-formed
// and the password must satisfy the strength policy; nothing is stored
// when any check fails.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	if !validation.IsValidEmail(email) {
		return nil, common.ErrorInvalidEmail
	}

	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	now := s.now()
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    now,
		LastActivity: now,
		LoginCount:   0,
	}
	if s.newID != nil {
		user.ID = s.newID()
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "email", created.Email)
	return created, nil
}

// Login verifies the credentials and returns a signed access token. It
// does not touch LoginCount or LastActivity; callers that track
// engagement use IncrementLogin explicitly.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("directory lookup: %w", err)
	}

	if !passwordx.Verify(password, user.PasswordHash) {
		s.logger.Warn(ctx, "failed login attempt", "email", email)
		return "", common.ErrorInvalidPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "user logged in", "email", email)
	return token, nil
}

// ValidateToken verifies a presented token and returns its claims. Token
// error kinds pass through unchanged.
func (s *Service) ValidateToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenString)
}

// GetUser looks a user up by email.
func (s *Service) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("directory lookup: %w", err)
	}
	return user, nil
}

// RecordActivity moves the user's LastActivity to now and persists it.
func (s *Service) RecordActivity(ctx context.Context, user *models.User) error {
	user.RecordActivity(s.now())
	return s.repo.UpdateActivity(ctx, user)
}

// IncrementLogin counts a successful login, records activity, and
// persists both.
func (s *Service) IncrementLogin(ctx context.Context, user *models.User) error {
	user.IncrementLogin(s.now())
	return s.repo.UpdateActivity(ctx, user)
}

// ActivityScore ranks the user's engagement as of now.
func (s *Service) ActivityScore(user *models.User) int {
	return user.ActivityScore(s.now())
}
