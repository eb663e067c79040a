package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/repository"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// UserService exposes read and delete operations over accounts. There is no
// update path: accounts are immutable after registration.
type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes one account. Assignment history referencing it goes with it
// through the store's cascade.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteAll empties the users relation. Idempotent; store failures are logged
// and the success response preserved.
func (s *UserService) DeleteAll(ctx context.Context) {
	if err := s.users.DeleteAll(ctx); err != nil {
		s.logger.Error("delete all users failed", zap.Error(err))
	}
}
