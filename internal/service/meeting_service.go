package service

import (
	"context"

	"github.com/rs/zerolog"

	"alumet/api/internal/ids"
	"alumet/api/internal/models"
)

// MeetingStore is the persistence surface the meeting service needs.
// Implemented by repository.MeetingRepository.
type MeetingStore interface {
	Create(ctx context.Context, req models.MeetingRequest) error
	GetByID(ctx context.Context, id string) (models.MeetingRequest, error)
	List(ctx context.Context, status string, limit int) ([]models.MeetingRequest, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
	TopProducts(ctx context.Context, limit int) ([]models.ProductCount, error)
}

var meetingUpdatable = map[string]updatableColumn{
	"name":          {column: "name"},
	"email":         {column: "email"},
	"phone":         {column: "phone"},
	"company":       {column: "company", nullable: true},
	"productId":     {column: "product_id"},
	"productName":   {column: "product_name"},
	"preferredDate": {column: "preferred_date"},
	"preferredTime": {column: "preferred_time"},
	"message":       {column: "message", nullable: true},
	"status":        {column: "status"},
}

type MeetingService struct {
	store MeetingStore
	log   zerolog.Logger
}

func NewMeetingService(store MeetingStore, log zerolog.Logger) *MeetingService {
	return &MeetingService{store: store, log: log}
}

type CreateMeetingInput struct {
	Name          string
	Email         string
	Phone         string
	Company       string
	ProductID     string
	ProductName   string
	PreferredDate string
	PreferredTime string
	Message       string
}

func (s *MeetingService) Create(ctx context.Context, input CreateMeetingInput) (models.MeetingRequest, error) {
	if err := checkRequired([]requiredField{
		{"name", input.Name},
		{"email", input.Email},
		{"phone", input.Phone},
		{"preferredDate", input.PreferredDate},
		{"preferredTime", input.PreferredTime},
		{"productId", input.ProductID},
		{"productName", input.ProductName},
	}); err != nil {
		return models.MeetingRequest{}, err
	}

	req := models.MeetingRequest{
		ID:            ids.New(ids.PrefixMeetingRequest),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Company:       optional(input.Company),
		ProductID:     input.ProductID,
		ProductName:   input.ProductName,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Message:       optional(input.Message),
		Status:        models.MeetingStatusPending,
	}

	if err := s.store.Create(ctx, req); err != nil {
		return models.MeetingRequest{}, err
	}

	s.log.Info().Str("id", req.ID).Str("product_id", req.ProductID).Msg("meeting request created")

	return s.store.GetByID(ctx, req.ID)
}

func (s *MeetingService) List(ctx context.Context, status string, limit int) ([]models.MeetingRequest, error) {
	return s.store.List(ctx, status, limit)
}

func (s *MeetingService) Update(ctx context.Context, id string, body map[string]any) (models.MeetingRequest, error) {
	if id == "" {
		return models.MeetingRequest{}, missingField("id")
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		return models.MeetingRequest{}, err
	}

	fields, err := filterUpdate(body, meetingUpdatable, models.IsMeetingStatus)
	if err != nil {
		return models.MeetingRequest{}, err
	}

	if len(fields) > 0 {
		if err := s.store.UpdateFields(ctx, id, fields); err != nil {
			return models.MeetingRequest{}, err
		}
	}

	return s.store.GetByID(ctx, id)
}

func (s *MeetingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return missingField("id")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("meeting request deleted")
	return nil
}
