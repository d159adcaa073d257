package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"alumet/api/internal/models"
)

const (
	statsCacheKey  = "admin:stats"
	topProductsCap = 5
)

// StatsService aggregates the dashboard numbers in SQL so the admin
// console does not have to pull every row to count them. Results are
// cached briefly; a cache failure degrades to recomputing, never to an
// error for the caller.
type StatsService struct {
	contacts ContactStore
	meetings MeetingStore
	cache    *redis.Client
	ttl      time.Duration
	log      zerolog.Logger
}

func NewStatsService(contacts ContactStore, meetings MeetingStore, cache *redis.Client, ttl time.Duration, log zerolog.Logger) *StatsService {
	return &StatsService{
		contacts: contacts,
		meetings: meetings,
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

func (s *StatsService) Stats(ctx context.Context) (models.DashboardStats, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	messageCounts, err := s.contacts.CountByStatus(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	meetingCounts, err := s.meetings.CountByStatus(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	topProducts, err := s.meetings.TopProducts(ctx, topProductsCap)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{
		Messages:    make(map[string]int64, len(models.ContactStatuses)),
		Meetings:    make(map[string]int64, len(models.MeetingStatuses)),
		TopProducts: topProducts,
	}
	for _, status := range models.ContactStatuses {
		stats.Messages[string(status)] = messageCounts[string(status)]
	}
	for _, status := range models.MeetingStatuses {
		stats.Meetings[string(status)] = meetingCounts[string(status)]
	}

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) (models.DashboardStats, bool) {
	if s.cache == nil {
		return models.DashboardStats{}, false
	}

	payload, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("stats cache read failed")
		}
		return models.DashboardStats{}, false
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		s.log.Warn().Err(err).Msg("stats cache entry is corrupt")
		return models.DashboardStats{}, false
	}
	return stats, true
}

func (s *StatsService) toCache(ctx context.Context, stats models.DashboardStats) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, payload, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("stats cache write failed")
	}
}
