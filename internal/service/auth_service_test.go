package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/backend/internal/config"
	"github.com/ticketdesk/backend/internal/domain"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

func newTestAuthService(users *mockUserRepo) *AuthService {
	return NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4,
	}, users)
}

func TestRegister_RequiresAllFields(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	tests := []struct {
		name                    string
		username, secret, email string
		role                    domain.Role
	}{
		{"missing username", "", "pw", "a@example.com", domain.RoleCustomer},
		{"missing secret", "alice", "", "a@example.com", domain.RoleCustomer},
		{"missing email", "alice", "pw", "", domain.RoleCustomer},
		{"missing role", "alice", "pw", "a@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Register(context.Background(), tt.username, tt.secret, tt.email, tt.role)
			require.Error(t, err)
			de := apperrors.ToDomainError(err)
			assert.Equal(t, "VALIDATION_FAILED", de.Code)
		})
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, _, _, err := svc.Register(context.Background(), "alice", "pw", "a@example.com", "superuser")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

// Anyone can self-register as admin without presenting any credential. This
// asserts the current behavior; it is a known access-control weakness, not an
// endorsement.
func TestRegister_OpenAdminRegistration(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users)

	user, token, _, err := svc.Register(context.Background(), "mallory", "pw", "m@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotEqual(t, "pw", user.PasswordHash)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "m@example.com", claims.Email)
}

func TestLogin(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users)

	_, _, _, err := svc.Register(context.Background(), "alice", "correct-pw", "a@example.com", domain.RoleCustomer)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, token, _, err := svc.Login(context.Background(), "alice", "correct-pw")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "alice", "wrong-pw")
		require.Error(t, err)
		assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "nobody", "pw")
		require.Error(t, err)
		assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
	})
}
