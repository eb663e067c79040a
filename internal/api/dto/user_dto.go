package dto

import (
	"time"

	"github.com/ticketdesk/backend/internal/domain"
)

// RegisterRequest payload for new accounts. The role is whatever the caller
// asks for, including admin.
type RegisterRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public shape of an account. The secret hash never
// leaves the service.
type UserResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserResponse maps a domain user to its public shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
