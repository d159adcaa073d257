package handlers_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"alumet/api/internal/config"
	"alumet/api/internal/handlers"
	"alumet/api/internal/models"
	"alumet/api/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(ctx context.Context, input service.CreateContactInput) (models.ContactMessage, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, status string, limit int) ([]models.ContactMessage, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id string, body map[string]any) (models.ContactMessage, error) {
	args := m.Called(ctx, id, body)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMeetingService struct {
	mock.Mock
}

func (m *MockMeetingService) Create(ctx context.Context, input service.CreateMeetingInput) (models.MeetingRequest, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.MeetingRequest), args.Error(1)
}

func (m *MockMeetingService) List(ctx context.Context, status string, limit int) ([]models.MeetingRequest, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]models.MeetingRequest), args.Error(1)
}

func (m *MockMeetingService) Update(ctx context.Context, id string, body map[string]any) (models.MeetingRequest, error) {
	args := m.Called(ctx, id, body)
	return args.Get(0).(models.MeetingRequest), args.Error(1)
}

func (m *MockMeetingService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) (models.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DashboardStats), args.Error(1)
}

const (
	testCookieName    = "alumet_admin_session"
	testSessionSecret = "handler-test-secret"
)

type testMocks struct {
	contacts *MockContactService
	meetings *MockMeetingService
	auth     *MockAuthService
	stats    *MockStatsService
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "development",
		Admin: config.AdminConfig{
			Email:         "admin@alumet.example",
			SessionSecret: testSessionSecret,
			SessionTTL:    8 * time.Hour,
			CookieName:    testCookieName,
		},
		// Generous so tests never trip the public-form limiter.
		RateLimit: config.RateLimitConfig{Rate: 1000, Burst: 1000},
	}
}

func newTestHandlerSet() (handlers.HandlerSet, testMocks) {
	m := testMocks{
		contacts: new(MockContactService),
		meetings: new(MockMeetingService),
		auth:     new(MockAuthService),
		stats:    new(MockStatsService),
	}

	h := handlers.NewHandlerSet(
		zerolog.Nop(), testConfig(),
		m.contacts, m.meetings, m.auth, m.stats,
		nil, nil,
	)
	return h, m
}
