package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticketdesk/backend/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	UpdateTitle(ctx context.Context, id int64, title string) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (ticket_id, title, status)
        VALUES ($1, $2, $3)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Status,
	).Scan(&ticket.CreatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT ticket_id, title, status, created_at
        FROM tickets WHERE ticket_id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Status,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT ticket_id, title, status, created_at
        FROM tickets ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Status,
			&ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Ticket, error) {
	const query = `
        UPDATE tickets SET title=$1 WHERE ticket_id=$2
        RETURNING ticket_id, title, status, created_at`
	return r.updateReturning(ctx, query, title, id)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Ticket, error) {
	const query = `
        UPDATE tickets SET status=$1 WHERE ticket_id=$2
        RETURNING ticket_id, title, status, created_at`
	return r.updateReturning(ctx, query, status, id)
}

func (r *ticketRepository) updateReturning(ctx context.Context, query string, value any, id int64) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, value, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Status,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE ticket_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets`)
	return err
}
