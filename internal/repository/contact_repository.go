package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"alumet/api/internal/models"
)

var contactColumns = []string{
	"id", "name", "email", "phone", "company", "inquiry_type",
	"message", "status", "created_at", "updated_at",
}

type ContactRepository struct {
	*Resource[models.ContactMessage]
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		Resource: NewResource[models.ContactMessage](pool, "contact_messages", contactColumns),
		pool:     pool,
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg models.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (
			id, name, email, phone, company, inquiry_type, message, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Company,
		msg.InquiryType,
		msg.Message,
		msg.Status,
	)
	return err
}
