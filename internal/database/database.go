package database

import (
	client "github.com/zungle102/shiftrec-sub000/internal/database/client"
	fluentdRepo "github.com/zungle102/shiftrec-sub000/internal/database/fluentd/repository"
	mongoRepo "github.com/zungle102/shiftrec-sub000/internal/database/mongodb/repository"
	redisRepo "github.com/zungle102/shiftrec-sub000/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
