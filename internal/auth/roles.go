package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketdesk/backend/internal/domain"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// Operation identifies an API operation for permission checks.
type Operation string

const (
	OpRegisterUser        Operation = "registerUser"
	OpListUsers           Operation = "listUsers"
	OpGetUser             Operation = "getUser"
	OpDeleteUser          Operation = "deleteUser"
	OpDeleteAllUsers      Operation = "deleteAllUsers"
	OpListTickets         Operation = "listTickets"
	OpGetTicket           Operation = "getTicket"
	OpCreateTicket        Operation = "createTicket"
	OpUpdateTicketTitle   Operation = "updateTicketTitle"
	OpDeleteTicket        Operation = "deleteTicket"
	OpDeleteAllTickets    Operation = "deleteAllTickets"
	OpAssignTicket        Operation = "assignTicket"
	OpListAssignedTickets Operation = "listAssignedTickets"
	OpUpdateTicketStatus  Operation = "updateTicketStatus"
)

// permissions maps each operation to the roles allowed to perform it. An
// operation absent from the table, or a role absent from its set, is denied.
// registerUser is unauthenticated and never consulted here.
//
// Access is purely role-based: there is no per-resource ownership check, so
// any customer may read or retitle any ticket by id. Known gap, kept on
// purpose because tightening it changes externally observable access control.
var permissions = map[Operation][]domain.Role{
	OpListUsers:           {domain.RoleSupportAgent, domain.RoleAdmin},
	OpGetUser:             {domain.RoleSupportAgent, domain.RoleAdmin},
	OpDeleteUser:          {domain.RoleAdmin},
	OpDeleteAllUsers:      {domain.RoleAdmin},
	OpListTickets:         {domain.RoleSupportAgent, domain.RoleAdmin},
	OpGetTicket:           {domain.RoleCustomer, domain.RoleSupportAgent, domain.RoleAdmin},
	OpCreateTicket:        {domain.RoleCustomer, domain.RoleAdmin},
	OpUpdateTicketTitle:   {domain.RoleCustomer, domain.RoleSupportAgent, domain.RoleAdmin},
	OpDeleteTicket:        {domain.RoleAdmin},
	OpDeleteAllTickets:    {domain.RoleAdmin},
	OpAssignTicket:        {domain.RoleSupportAgent, domain.RoleAdmin},
	OpListAssignedTickets: {domain.RoleCustomer, domain.RoleSupportAgent, domain.RoleAdmin},
	OpUpdateTicketStatus:  {domain.RoleAdmin},
}

// Authorize decides whether role may perform op. Pure table lookup.
func Authorize(role domain.Role, op Operation) bool {
	for _, allowed := range permissions[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Require returns middleware enforcing that the authenticated principal's
// role is permitted to perform op.
func Require(op Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !Authorize(principal.Role, op) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
