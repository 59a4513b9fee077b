package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/easyxpense-ledger/internal/config"
	"github.com/easyxpense-ledger/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any email/password mismatch.
// Login never reveals which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthServiceImpl implements the AuthService interface
type AuthServiceImpl struct {
	userRepo user.Repository
	cfg      *config.AuthConfig
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *slog.Logger, cfg *config.AuthConfig, userRepo user.Repository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register creates a new user account, checking for duplicate emails,
// and returns the user with a signed access token
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existingUser != nil {
		return nil, "", user.ErrDuplicateEmail{Email: email}
	}

	u, err := user.NewUser(name, email, password)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.signToken(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User registered", "user_id", u.ID.String())
	return u, token, nil
}

// Login verifies credentials and returns the user with a signed access token
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !u.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(u.ID)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// GetUserByID retrieves a user by its ID, returns ErrUserNotFound if not found
func (s *AuthServiceImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// signToken issues an HS256 access token with the user ID as subject
func (s *AuthServiceImpl) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}
