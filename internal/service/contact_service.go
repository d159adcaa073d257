package service

import (
	"context"

	"github.com/rs/zerolog"

	"alumet/api/internal/ids"
	"alumet/api/internal/models"
)

// ContactStore is the persistence surface the contact service needs.
// Implemented by repository.ContactRepository.
type ContactStore interface {
	Create(ctx context.Context, msg models.ContactMessage) error
	GetByID(ctx context.Context, id string) (models.ContactMessage, error)
	List(ctx context.Context, status string, limit int) ([]models.ContactMessage, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

var contactUpdatable = map[string]updatableColumn{
	"name":        {column: "name"},
	"email":       {column: "email"},
	"phone":       {column: "phone", nullable: true},
	"company":     {column: "company", nullable: true},
	"inquiryType": {column: "inquiry_type"},
	"message":     {column: "message"},
	"status":      {column: "status"},
}

type ContactService struct {
	store ContactStore
	log   zerolog.Logger
}

func NewContactService(store ContactStore, log zerolog.Logger) *ContactService {
	return &ContactService{store: store, log: log}
}

type CreateContactInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	InquiryType string
	Message     string
}

// Create validates the submission, persists it with a fresh ID and the
// initial "new" status, and returns the stored row including the
// database-assigned timestamps.
func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (models.ContactMessage, error) {
	if err := checkRequired([]requiredField{
		{"name", input.Name},
		{"email", input.Email},
		{"inquiryType", input.InquiryType},
		{"message", input.Message},
	}); err != nil {
		return models.ContactMessage{}, err
	}

	msg := models.ContactMessage{
		ID:          ids.New(ids.PrefixContactMessage),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       optional(input.Phone),
		Company:     optional(input.Company),
		InquiryType: input.InquiryType,
		Message:     input.Message,
		Status:      models.ContactStatusNew,
	}

	if err := s.store.Create(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}

	s.log.Info().Str("id", msg.ID).Str("inquiry_type", msg.InquiryType).Msg("contact message created")

	return s.store.GetByID(ctx, msg.ID)
}

func (s *ContactService) List(ctx context.Context, status string, limit int) ([]models.ContactMessage, error) {
	return s.store.List(ctx, status, limit)
}

// Update applies a partial update addressed by the id key in body. Keys
// outside the per-resource allow-list are rejected, so a request can
// never write to columns the API does not expose.
func (s *ContactService) Update(ctx context.Context, id string, body map[string]any) (models.ContactMessage, error) {
	if id == "" {
		return models.ContactMessage{}, missingField("id")
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		return models.ContactMessage{}, err
	}

	fields, err := filterUpdate(body, contactUpdatable, models.IsContactStatus)
	if err != nil {
		return models.ContactMessage{}, err
	}

	if len(fields) > 0 {
		if err := s.store.UpdateFields(ctx, id, fields); err != nil {
			return models.ContactMessage{}, err
		}
	}

	return s.store.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return missingField("id")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("contact message deleted")
	return nil
}
