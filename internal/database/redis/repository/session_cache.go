package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	client "github.com/zungle102/shiftrec-sub000/internal/database/client"

	"github.com/redis/go-redis/v9"
)

// SessionCacheRepository 快取「session token → 帳號 email」的對應，
// 降低每個請求都回 MongoDB 驗帳號的成本。
type SessionCacheRepository struct {
	client *redis.Client
}

func NewSessionCacheRepository(client *client.RedisClient) *SessionCacheRepository {
	return &SessionCacheRepository{client: client.Client()}
}

// Get 讀取快取；cache miss 回傳空字串（不是錯誤）
func (repository *SessionCacheRepository) Get(
	contextValue context.Context,
	token string,
) (ownerEmail string, returnedError error) {

	value, getError := repository.client.Get(contextValue, repository.buildKey(token)).Result()
	if getError == redis.Nil {
		return "", nil
	}
	if getError != nil {
		return "", getError
	}
	return value, nil
}

func (repository *SessionCacheRepository) Set(
	contextValue context.Context,
	token string,
	ownerEmail string,
	timeToLiveSeconds int64,
) error {
	expiration := time.Duration(timeToLiveSeconds) * time.Second
	return repository.client.Set(contextValue, repository.buildKey(token), ownerEmail, expiration).Err()
}

// Delete 帳號停用時主動清掉快取
func (repository *SessionCacheRepository) Delete(
	contextValue context.Context,
	token string,
) error {
	return repository.client.Del(contextValue, repository.buildKey(token)).Err()
}

func (r *SessionCacheRepository) buildKey(token string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeySession, token)
}
