package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alumet/api/internal/models"
)

var meetingColumns = []string{
	"id", "name", "email", "phone", "company", "product_id", "product_name",
	"preferred_date", "preferred_time", "message", "status", "created_at", "updated_at",
}

type MeetingRepository struct {
	*Resource[models.MeetingRequest]
	pool *pgxpool.Pool
}

func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{
		Resource: NewResource[models.MeetingRequest](pool, "meeting_requests", meetingColumns),
		pool:     pool,
	}
}

func (r *MeetingRepository) Create(ctx context.Context, req models.MeetingRequest) error {
	const query = `
		INSERT INTO meeting_requests (
			id, name, email, phone, company, product_id, product_name,
			preferred_date, preferred_time, message, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.Name,
		req.Email,
		req.Phone,
		req.Company,
		req.ProductID,
		req.ProductName,
		req.PreferredDate,
		req.PreferredTime,
		req.Message,
		req.Status,
	)
	return err
}

// TopProducts returns the most requested products across all meeting
// requests, most requested first.
func (r *MeetingRepository) TopProducts(ctx context.Context, limit int) ([]models.ProductCount, error) {
	const query = `
		SELECT product_id, product_name, COUNT(*) AS count
		FROM meeting_requests
		GROUP BY product_id, product_name
		ORDER BY count DESC, product_name ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProductCount])
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.ProductCount{}
	}
	return counts, nil
}
