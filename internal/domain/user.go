package domain

import "time"

// Role enumerates the three caller roles the service recognizes.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleSupportAgent Role = "support_agent"
	RoleAdmin        Role = "admin"
)

// Roles lists every valid role, in a stable order.
var Roles = []Role{RoleCustomer, RoleSupportAgent, RoleAdmin}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSupportAgent, RoleAdmin:
		return true
	}
	return false
}

// User is the domain model for an account. Accounts are immutable after
// registration; the only mutation the API exposes is deletion.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Role         Role
	CreatedAt    time.Time
}
