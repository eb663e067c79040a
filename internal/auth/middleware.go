package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ticketdesk/backend/internal/domain"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, reconstructed from token
// claims. The token embeds the full identity record, so no store round-trip
// happens per request.
type Principal struct {
	UserID   int64
	Username string
	Email    string
	Role     domain.Role
}

// Middleware validates bearer tokens and attaches the principal.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. A missing credential
// and a rejected credential produce distinct error codes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewInvalidCredentials("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewInvalidCredentials("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
