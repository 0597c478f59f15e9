package repository

//go:generate mockgen -source=inbox_repository.go -destination=mocks/inbox_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// InboxRepository stores contact-form messages.
type InboxRepository interface {
	Create(ctx context.Context, message *domain.InboxMessage) error
	GetByID(ctx context.Context, id string) (*domain.InboxMessage, error)
	List(ctx context.Context) ([]domain.InboxMessage, error)
	Delete(ctx context.Context, id string) error
}

type inboxRepository struct {
	pool *pgxpool.Pool
}

func NewInboxRepository(pool *pgxpool.Pool) InboxRepository {
	return &inboxRepository{pool: pool}
}

const inboxColumns = `id, first_name, last_name, email, message, created_at, updated_at`

func scanInboxMessage(row pgx.Row) (*domain.InboxMessage, error) {
	var msg domain.InboxMessage
	if err := row.Scan(&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &msg.Message, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *inboxRepository) Create(ctx context.Context, msg *domain.InboxMessage) error {
	if err := validate(msg); err != nil {
		return err
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO inbox_messages (id, first_name, last_name, email, message)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, msg.ID, msg.FirstName, msg.LastName, msg.Email, msg.Message).
		Scan(&msg.CreatedAt, &msg.UpdatedAt)
	return mapError("insert inbox message", err)
}

func (r *inboxRepository) GetByID(ctx context.Context, id string) (*domain.InboxMessage, error) {
	msg, err := scanInboxMessage(r.pool.QueryRow(ctx, `SELECT `+inboxColumns+` FROM inbox_messages WHERE id=$1`, id))
	if err != nil {
		return nil, mapError("get inbox message", err)
	}
	return msg, nil
}

func (r *inboxRepository) List(ctx context.Context) ([]domain.InboxMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+inboxColumns+` FROM inbox_messages ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, mapError("list inbox messages", err)
	}
	defer rows.Close()

	messages := make([]domain.InboxMessage, 0)
	for rows.Next() {
		msg, err := scanInboxMessage(rows)
		if err != nil {
			return nil, mapError("scan inbox message", err)
		}
		messages = append(messages, *msg)
	}
	return messages, mapError("list inbox messages", rows.Err())
}

func (r *inboxRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inbox_messages WHERE id=$1`, id)
	if err != nil {
		return mapDeleteError("delete inbox message", err)
	}
	return checkAffected("delete inbox message", cmd)
}
