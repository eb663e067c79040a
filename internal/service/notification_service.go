package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ticketdesk/backend/internal/events"
	"github.com/ticketdesk/backend/internal/notify"
)

// DeliveryMarker records that a notification went out. Best-effort; errors
// are logged by the caller and otherwise ignored.
type DeliveryMarker interface {
	MarkDelivered(ctx context.Context, key string, ttl time.Duration) error
}

// NotificationService turns domain events into outbound messages. Every
// failure is swallowed after logging: notification delivery never affects the
// operation that triggered it.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     notify.Sender
	markers    DeliveryMarker
	logger     *zap.Logger
}

// NewNotificationService creates the service. markers may be nil.
func NewNotificationService(dispatcher events.Dispatcher, sender notify.Sender, markers DeliveryMarker, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		sender:     sender,
		markers:    markers,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the events this service reacts to.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleTicketAssigned)
}

func (n *NotificationService) handleTicketAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok {
		n.logger.Warn("unexpected payload for ticket_assigned", zap.String("event_id", event.ID))
		return nil
	}

	subject := fmt.Sprintf("Ticket #%d assigned to you", event.TicketID)
	body := fmt.Sprintf("You have been assigned ticket #%d: %s", event.TicketID, payload.TicketTitle)

	if err := n.sender.Send(ctx, payload.AssigneeEmail, subject, body); err != nil {
		n.logger.Error("notification delivery failed",
			zap.Int64("ticket_id", event.TicketID),
			zap.Int64("assignee_id", payload.AssigneeID),
			zap.Error(err))
		return nil
	}

	n.logger.Info("assignment notification sent",
		zap.Int64("ticket_id", event.TicketID),
		zap.Int64("assignee_id", payload.AssigneeID))

	if n.markers != nil {
		key := fmt.Sprintf("notify:assignment:%d", payload.AssignmentID)
		if err := n.markers.MarkDelivered(ctx, key, 24*time.Hour); err != nil {
			n.logger.Warn("failed to record delivery marker", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}
