package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBShiftrec MongoDatabaseName = "shiftrec"
)

// MongoDB collections
const (
	MongoCollectionShifts      MongoCollection = "shiftrec_shifts"
	MongoCollectionClients     MongoCollection = "shiftrec_clients"
	MongoCollectionStaff       MongoCollection = "shiftrec_staff_members"
	MongoCollectionClientTypes MongoCollection = "shiftrec_client_types"
	MongoCollectionOwners      MongoCollection = "shiftrec_owners"
)

// ─── Redis ─────────────────────────────────────────────────────────────────────
const (
	RedisKeySession    RedisKey = "session"    // session token → owner email 快取
	RedisKeyRateLimit  RedisKey = "ratelimit"  // 帳號級限流
	RedisKeyServerName RedisKey = "shiftrec"   // 伺服器名稱
)

// ─── Fluentd ───────────────────────────────────────────────────────────────────
const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "shiftrec_audit_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
