package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketdesk/backend/internal/api/http/handlers"
	"github.com/ticketdesk/backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Assignments    *handlers.AssignmentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The deleteAll routes are registered
// before their /:id siblings so fiber does not swallow the literal segment as
// a parameter.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Users.Register)
	app.Post("/login", cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users")
	users.Get("", auth.Require(auth.OpListUsers), cfg.Users.List)
	users.Delete("/deleteAll", auth.Require(auth.OpDeleteAllUsers), cfg.Users.DeleteAll)
	users.Get("/:id", auth.Require(auth.OpGetUser), cfg.Users.Get)
	users.Delete("/:id", auth.Require(auth.OpDeleteUser), cfg.Users.Delete)

	tickets := protected.Group("/tickets")
	tickets.Get("", auth.Require(auth.OpListTickets), cfg.Tickets.List)
	tickets.Post("", auth.Require(auth.OpCreateTicket), cfg.Tickets.Create)
	tickets.Post("/assign", auth.Require(auth.OpAssignTicket), cfg.Assignments.Assign)
	tickets.Delete("/deleteAll", auth.Require(auth.OpDeleteAllTickets), cfg.Tickets.DeleteAll)
	tickets.Patch("/status/:id", auth.Require(auth.OpUpdateTicketStatus), cfg.Tickets.UpdateStatus)
	tickets.Get("/:id", auth.Require(auth.OpGetTicket), cfg.Tickets.Get)
	tickets.Patch("/:id", auth.Require(auth.OpUpdateTicketTitle), cfg.Tickets.UpdateTitle)
	tickets.Delete("/:id", auth.Require(auth.OpDeleteTicket), cfg.Tickets.Delete)

	protected.Get("/assignedTickets", auth.Require(auth.OpListAssignedTickets), cfg.Assignments.ListAssigned)
}
