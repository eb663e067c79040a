package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ticketdesk/backend/internal/api/dto"
	"github.com/ticketdesk/backend/internal/service"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// AssignmentsHandler manages ticket assignment endpoints.
type AssignmentsHandler struct {
	service *service.AssignmentService
}

// NewAssignmentsHandler constructs the handler.
func NewAssignmentsHandler(assignmentService *service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{service: assignmentService}
}

// Assign handles POST /tickets/assign.
func (h *AssignmentsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == 0 || req.TicketID == 0 {
		return apperrors.NewValidationError("userId and ticketId are required", nil)
	}

	assignment, err := h.service.Assign(c.Context(), req.UserID, req.TicketID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AssignmentResponse{
		ID:         assignment.ID,
		TicketID:   assignment.TicketID,
		UserID:     assignment.UserID,
		AssignedAt: assignment.AssignedAt,
	}})
}

// ListAssigned handles GET /assignedTickets.
func (h *AssignmentsHandler) ListAssigned(c *fiber.Ctx) error {
	rows, err := h.service.ListAssignedTickets(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AssignedTicketResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.AssignedTicketResponse{
			AssignmentID:  row.AssignmentID,
			TicketID:      row.TicketID,
			Title:         row.Title,
			Status:        row.Status,
			AssigneeID:    row.AssigneeID,
			AssigneeName:  row.AssigneeName,
			AssigneeEmail: row.AssigneeEmail,
			AssignedAt:    row.AssignedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
