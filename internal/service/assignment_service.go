package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/events"
	"github.com/ticketdesk/backend/internal/repository"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// AssignmentService handles ticket assignment and the assigned-tickets view.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	tickets     repository.TicketRepository
	users       repository.UserRepository
	dispatcher  events.Dispatcher
}

// AssignmentDependencies bundles repositories.
type AssignmentDependencies struct {
	AssignmentRepo repository.AssignmentRepository
	TicketRepo     repository.TicketRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		assignments: deps.AssignmentRepo,
		tickets:     deps.TicketRepo,
		users:       deps.UserRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Assign appends an assignment row linking the ticket to the user and
// publishes a ticket_assigned event carrying the assignee's email. The
// notification ride-along is asynchronous and best-effort: its failure never
// rolls back the insert. A missing user or ticket aborts before any row is
// written.
func (s *AssignmentService) Assign(ctx context.Context, userID, ticketID int64) (*domain.Assignment, error) {
	assignee, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	assignment := &domain.Assignment{
		TicketID: ticket.ID,
		UserID:   assignee.ID,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketAssigned,
			TicketID:  ticket.ID,
			Timestamp: time.Now(),
			Payload: events.TicketAssignedPayload{
				AssignmentID:  assignment.ID,
				AssigneeID:    assignee.ID,
				AssigneeEmail: assignee.Email,
				AssigneeRole:  assignee.Role,
				TicketTitle:   ticket.Title,
			},
		})
	}
	return assignment, nil
}

// ListAssignedTickets returns every assignment joined with its ticket and
// assignee.
func (s *AssignmentService) ListAssignedTickets(ctx context.Context) ([]domain.AssignedTicket, error) {
	rows, err := s.assignments.ListAssignedTickets(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return rows, nil
}
