package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumet/api/internal/models"
)

type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) Create(ctx context.Context, msg models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactStore) GetByID(ctx context.Context, id string) (models.ContactMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactStore) List(ctx context.Context, status string, limit int) ([]models.ContactMessage, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockContactStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockMeetingStore struct {
	mock.Mock
}

func (m *MockMeetingStore) Create(ctx context.Context, req models.MeetingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMeetingStore) GetByID(ctx context.Context, id string) (models.MeetingRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MeetingRequest), args.Error(1)
}

func (m *MockMeetingStore) List(ctx context.Context, status string, limit int) ([]models.MeetingRequest, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]models.MeetingRequest), args.Error(1)
}

func (m *MockMeetingStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockMeetingStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMeetingStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockMeetingStore) TopProducts(ctx context.Context, limit int) ([]models.ProductCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.ProductCount), args.Error(1)
}
