package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/backend/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       7,
		Username: "carol",
		Email:    "carol@example.com",
		Role:     domain.RoleAdmin,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)

	token, exp, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "carol", claims.Username)
	assert.Equal(t, "carol@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 5)
	verifier := NewTokenManager("secret-b", 5)

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)

	token, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = tm.ParseToken(token + "x")
	assert.Error(t, err)

	_, err = tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now().Add(59*time.Minute)))
}
