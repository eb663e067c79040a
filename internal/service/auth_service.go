package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticketdesk/backend/internal/auth"
	"github.com/ticketdesk/backend/internal/config"
	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/repository"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Register creates a new account and issues a token for it.
//
// The role is taken exactly as the caller supplied it, so anyone can
// self-register as admin. Known weakness of the current contract; left in
// place rather than silently tightened because fixing it changes the
// externally observable behavior of /register.
func (s *AuthService) Register(ctx context.Context, username, secret, email string, role domain.Role) (*domain.User, string, time.Time, error) {
	if username == "" || secret == "" || email == "" || role == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username, secret, email and role are required", nil)
	}
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	hash, err := auth.HashPassword(secret, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Login authenticates an existing account by username and secret.
func (s *AuthService) Login(ctx context.Context, username, secret string) (*domain.User, string, time.Time, error) {
	if username == "" || secret == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username and secret are required", nil)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, secret); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}
