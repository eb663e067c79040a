package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/events"
	"github.com/ticketdesk/backend/internal/repository"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// TicketService owns the ticket lifecycle: creation, reads, title and status
// mutation, deletion.
type TicketService struct {
	tickets    repository.TicketRepository
	statuses   StatusPolicy
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTicketService builds the service with the given status policy.
func NewTicketService(tickets repository.TicketRepository, statuses StatusPolicy, dispatcher events.Dispatcher, logger *zap.Logger) *TicketService {
	if statuses == nil {
		statuses = PermissiveStatusPolicy{}
	}
	return &TicketService{tickets: tickets, statuses: statuses, dispatcher: dispatcher, logger: logger}
}

// Create stores a new ticket. The id comes from the caller; status always
// starts at open and created-at is set by the store.
func (s *TicketService) Create(ctx context.Context, id int64, title string) (*domain.Ticket, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	ticket := &domain.Ticket{
		ID:     id,
		Title:  title,
		Status: string(domain.TicketStatusOpen),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketCreated, ticket.ID, events.TicketCreatedPayload{Title: ticket.Title})
	return ticket, nil
}

// Get returns one ticket by id.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// List returns all tickets.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// UpdateTitle changes a ticket's title. Status is untouched.
func (s *TicketService) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Ticket, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	ticket, err := s.tickets.UpdateTitle(ctx, id, title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// UpdateStatus writes a new status after running it through the configured
// policy. The permissive default writes whatever the caller sent.
func (s *TicketService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Ticket, error) {
	if status == "" {
		return nil, apperrors.NewValidationError("status is required", nil)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.Validate(current.Status, status); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketStatusChanged, ticket.ID, events.TicketStatusChangedPayload{
		OldStatus: current.Status,
		NewStatus: ticket.Status,
	})
	return ticket, nil
}

// Delete removes a ticket; its assignment history cascades away in the store.
func (s *TicketService) Delete(ctx context.Context, id int64) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteAll empties the tickets relation. Idempotent; store failures are
// logged and the success response preserved.
func (s *TicketService) DeleteAll(ctx context.Context) {
	if err := s.tickets.DeleteAll(ctx); err != nil {
		s.logger.Error("delete all tickets failed", zap.Error(err))
	}
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticketID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TicketID:  ticketID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
