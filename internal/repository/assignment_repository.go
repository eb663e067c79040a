package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticketdesk/backend/internal/domain"
)

// AssignmentRepository persists the append-only ticket/user assignment
// history. There is deliberately no update or delete method; rows disappear
// only through the cascade on ticket or user deletion.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	ListAssignedTickets(ctx context.Context) ([]domain.AssignedTicket, error)
}

type assignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository returns a Postgres-backed implementation.
func NewAssignmentRepository(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepository{pool: pool}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	const query = `
        INSERT INTO ticket_assignments (ticket_id, user_id)
        VALUES ($1, $2)
        RETURNING assignment_id, assigned_at`
	return r.pool.QueryRow(ctx, query,
		assignment.TicketID,
		assignment.UserID,
	).Scan(&assignment.ID, &assignment.AssignedAt)
}

func (r *assignmentRepository) ListAssignedTickets(ctx context.Context) ([]domain.AssignedTicket, error) {
	const query = `
        SELECT a.assignment_id, t.ticket_id, t.title, t.status,
               u.user_id, u.username, u.email, a.assigned_at
        FROM ticket_assignments a
        JOIN tickets t ON t.ticket_id = a.ticket_id
        JOIN users u ON u.user_id = a.user_id
        ORDER BY a.assigned_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AssignedTicket
	for rows.Next() {
		var row domain.AssignedTicket
		if err := rows.Scan(
			&row.AssignmentID,
			&row.TicketID,
			&row.Title,
			&row.Status,
			&row.AssigneeID,
			&row.AssigneeName,
			&row.AssigneeEmail,
			&row.AssignedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
