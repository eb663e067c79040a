package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ticketdesk/backend/internal/domain"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

func TestUserGet_NotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), zap.NewNop())

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUserDelete(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users, zap.NewNop())

	u := &domain.User{Username: "alice", Email: "a@example.com", Role: domain.RoleCustomer}
	require.NoError(t, users.Create(context.Background(), u))

	require.NoError(t, svc.Delete(context.Background(), u.ID))

	err := svc.Delete(context.Background(), u.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUserDeleteAll_Idempotent(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users, zap.NewNop())

	require.NoError(t, users.Create(context.Background(), &domain.User{Username: "alice", Email: "a@example.com", Role: domain.RoleCustomer}))

	svc.DeleteAll(context.Background())
	svc.DeleteAll(context.Background())

	assert.Equal(t, 2, users.deletedAll)
	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
