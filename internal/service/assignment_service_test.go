package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/events"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

func newAssignmentFixture(t *testing.T) (*AssignmentService, *mockUserRepo, *mockTicketRepo, *mockAssignmentRepo, *captureDispatcher) {
	t.Helper()

	users := newMockUserRepo()
	tickets := newMockTicketRepo()
	assignments := newMockAssignmentRepo()
	dispatcher := &captureDispatcher{}

	svc := NewAssignmentService(AssignmentDependencies{
		AssignmentRepo: assignments,
		TicketRepo:     tickets,
		UserRepo:       users,
		Dispatcher:     dispatcher,
	})
	return svc, users, tickets, assignments, dispatcher
}

func TestAssign_InsertsRowAndNotifies(t *testing.T) {
	svc, users, tickets, assignments, dispatcher := newAssignmentFixture(t)

	users.nextID = 7
	agent := &domain.User{Username: "carol", Email: "carol@example.com", Role: domain.RoleSupportAgent}
	require.NoError(t, users.Create(context.Background(), agent))
	require.Equal(t, int64(7), agent.ID)

	require.NoError(t, tickets.Create(context.Background(), &domain.Ticket{ID: 42, Title: "printer jam", Status: "open"}))

	assignment, err := svc.Assign(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), assignment.TicketID)
	assert.Equal(t, int64(7), assignment.UserID)
	assert.False(t, assignment.AssignedAt.IsZero())

	require.Len(t, assignments.assignments, 1)

	published := dispatcher.published(events.EventTicketAssigned)
	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.TicketAssignedPayload)
	require.True(t, ok)
	assert.Equal(t, "carol@example.com", payload.AssigneeEmail)
	assert.Equal(t, int64(7), payload.AssigneeID)
	assert.Equal(t, "printer jam", payload.TicketTitle)
}

func TestAssign_MissingUser(t *testing.T) {
	svc, _, tickets, assignments, dispatcher := newAssignmentFixture(t)

	require.NoError(t, tickets.Create(context.Background(), &domain.Ticket{ID: 42, Title: "printer jam", Status: "open"}))

	_, err := svc.Assign(context.Background(), 999, 42)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	assert.Empty(t, assignments.assignments)
	assert.Empty(t, dispatcher.published(events.EventTicketAssigned))
}

func TestAssign_MissingTicket(t *testing.T) {
	svc, users, _, assignments, dispatcher := newAssignmentFixture(t)

	agent := &domain.User{Username: "carol", Email: "carol@example.com", Role: domain.RoleSupportAgent}
	require.NoError(t, users.Create(context.Background(), agent))

	_, err := svc.Assign(context.Background(), agent.ID, 999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	assert.Empty(t, assignments.assignments)
	assert.Empty(t, dispatcher.published(events.EventTicketAssigned))
}

func TestAssign_AppendOnlyHistory(t *testing.T) {
	svc, users, tickets, assignments, _ := newAssignmentFixture(t)

	agent := &domain.User{Username: "carol", Email: "carol@example.com", Role: domain.RoleSupportAgent}
	require.NoError(t, users.Create(context.Background(), agent))
	require.NoError(t, tickets.Create(context.Background(), &domain.Ticket{ID: 42, Title: "printer jam", Status: "open"}))

	_, err := svc.Assign(context.Background(), agent.ID, 42)
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), agent.ID, 42)
	require.NoError(t, err)

	// Re-assigning appends a second row; nothing is updated in place.
	require.Len(t, assignments.assignments, 2)
	assert.NotEqual(t, assignments.assignments[0].ID, assignments.assignments[1].ID)
}
