package events

import (
	"time"

	"github.com/ticketdesk/backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title string `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// TicketAssignedPayload payload. The assignee's email rides along so the
// notification handler needs no further lookup.
type TicketAssignedPayload struct {
	AssignmentID  int64       `json:"assignment_id"`
	AssigneeID    int64       `json:"assignee_id"`
	AssigneeEmail string      `json:"assignee_email"`
	AssigneeRole  domain.Role `json:"assignee_role"`
	TicketTitle   string      `json:"ticket_title"`
}
