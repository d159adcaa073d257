package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"alumet/api/internal/config"
	"alumet/api/internal/middleware"
	"alumet/api/internal/models"
	"alumet/api/internal/service"
)

// Service interfaces are declared here, on the consumer side, so handler
// tests can swap in mocks.

type ContactService interface {
	Create(ctx context.Context, input service.CreateContactInput) (models.ContactMessage, error)
	List(ctx context.Context, status string, limit int) ([]models.ContactMessage, error)
	Update(ctx context.Context, id string, body map[string]any) (models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type MeetingService interface {
	Create(ctx context.Context, input service.CreateMeetingInput) (models.MeetingRequest, error)
	List(ctx context.Context, status string, limit int) ([]models.MeetingRequest, error)
	Update(ctx context.Context, id string, body map[string]any) (models.MeetingRequest, error)
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type StatsService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	contacts ContactService
	meetings MeetingService
	auth     AuthService
	stats    StatsService
	db       *pgxpool.Pool
	cache    *redis.Client
	limiter  *middleware.RateLimiter
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	contacts ContactService,
	meetings MeetingService,
	auth AuthService,
	stats StatsService,
	db *pgxpool.Pool,
	cache *redis.Client,
) HandlerSet {
	return HandlerSet{
		log:      log,
		cfg:      cfg,
		contacts: contacts,
		meetings: meetings,
		auth:     auth,
		stats:    stats,
		db:       db,
		cache:    cache,
		limiter:  middleware.NewRateLimiter(cfg.RateLimit),
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	adminOnly := middleware.AdminAuth(h.cfg)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/check", h.CheckAuth)

		contacts := v1.Group("/contact-messages")
		contacts.GET("", h.ListContactMessages)
		contacts.POST("", h.limiter.Limit(), h.CreateContactMessage)
		contacts.PUT("", adminOnly, h.UpdateContactMessage)
		contacts.DELETE("", adminOnly, h.DeleteContactMessage)

		meetings := v1.Group("/meeting-requests")
		meetings.GET("", h.ListMeetingRequests)
		meetings.POST("", h.limiter.Limit(), h.CreateMeetingRequest)
		meetings.PUT("", adminOnly, h.UpdateMeetingRequest)
		meetings.DELETE("", adminOnly, h.DeleteMeetingRequest)

		admin := v1.Group("/admin")
		admin.Use(adminOnly)
		admin.GET("/stats", h.AdminStats)
	}
}
