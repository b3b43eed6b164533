package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	rateLimitRepo    *RateLimiterRepository
	sessionCacheRepo *SessionCacheRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	rateLimitRepo *RateLimiterRepository,
	sessionCacheRepo *SessionCacheRepository,
) *RedisRepository {
	return &RedisRepository{
		rateLimitRepo:    rateLimitRepo,
		sessionCacheRepo: sessionCacheRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewRateLimiterRepository,
	NewSessionCacheRepository,
	NewRedisRepository)
