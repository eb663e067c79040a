package dto

import (
	"time"

	"github.com/ticketdesk/backend/internal/domain"
)

// CreateTicketRequest payload; the caller chooses the ticket id.
type CreateTicketRequest struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// UpdateTitleRequest payload.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignRequest payload.
type AssignRequest struct {
	UserID   int64 `json:"userId"`
	TicketID int64 `json:"ticketId"`
}

// TicketResponse is the public shape of a ticket.
type TicketResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID,
		Title:     ticket.Title,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}
}

// AssignmentResponse is the public shape of a newly created assignment.
type AssignmentResponse struct {
	ID         int64     `json:"id"`
	TicketID   int64     `json:"ticketId"`
	UserID     int64     `json:"userId"`
	AssignedAt time.Time `json:"assigned_at"`
}

// AssignedTicketResponse is one row of the assigned-tickets join.
type AssignedTicketResponse struct {
	AssignmentID  int64     `json:"assignment_id"`
	TicketID      int64     `json:"ticket_id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	AssigneeID    int64     `json:"assignee_id"`
	AssigneeName  string    `json:"assignee_name"`
	AssigneeEmail string    `json:"assignee_email"`
	AssignedAt    time.Time `json:"assigned_at"`
}
