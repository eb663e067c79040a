package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticketdesk/backend/internal/domain"
	"github.com/ticketdesk/backend/internal/events"
)

// mockUserRepo implements repository.UserRepository for testing.
type mockUserRepo struct {
	users      map[int64]*domain.User
	nextID     int64
	createErr  error
	deletedAll int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) DeleteAll(_ context.Context) error {
	m.users = make(map[int64]*domain.User)
	m.deletedAll++
	return nil
}

// mockTicketRepo implements repository.TicketRepository for testing.
type mockTicketRepo struct {
	tickets      map[int64]*domain.Ticket
	deleteAllErr error
	deletedAll   int
}

func newMockTicketRepo() *mockTicketRepo {
	return &mockTicketRepo{tickets: make(map[int64]*domain.Ticket)}
}

func (m *mockTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.CreatedAt = time.Now()
	copied := *ticket
	m.tickets[ticket.ID] = &copied
	return nil
}

func (m *mockTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	if t, ok := m.tickets[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, t := range m.tickets {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTicketRepo) UpdateTitle(_ context.Context, id int64, title string) (*domain.Ticket, error) {
	t, ok := m.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	t.Title = title
	copied := *t
	return &copied, nil
}

func (m *mockTicketRepo) UpdateStatus(_ context.Context, id int64, status string) (*domain.Ticket, error) {
	t, ok := m.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	t.Status = status
	copied := *t
	return &copied, nil
}

func (m *mockTicketRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.tickets, id)
	return nil
}

func (m *mockTicketRepo) DeleteAll(_ context.Context) error {
	if m.deleteAllErr != nil {
		return m.deleteAllErr
	}
	m.tickets = make(map[int64]*domain.Ticket)
	m.deletedAll++
	return nil
}

// mockAssignmentRepo implements repository.AssignmentRepository for testing.
type mockAssignmentRepo struct {
	assignments []*domain.Assignment
	nextID      int64
	createErr   error
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{nextID: 1}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *domain.Assignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	assignment.ID = m.nextID
	assignment.AssignedAt = time.Now()
	m.nextID++
	copied := *assignment
	m.assignments = append(m.assignments, &copied)
	return nil
}

func (m *mockAssignmentRepo) ListAssignedTickets(_ context.Context) ([]domain.AssignedTicket, error) {
	return nil, nil
}

// captureDispatcher records published events synchronously.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (d *captureDispatcher) published(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, e := range d.events {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}
