package store

import (
	"fmt"

	"atlas/pkg/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	BackendBolt     = "bolt"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// OpenBackend picks the slot backend named by STORE_BACKEND. The redis and
// postgres backends reuse connections owned by the caller.
func OpenBackend(cfg *config.Config, redisClient *redis.Client, db *gorm.DB) (Backend, error) {
	switch cfg.StoreBackend {
	case BackendBolt, "":
		return NewBoltBackend(cfg.StorePath)
	case BackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("store backend %q requires a redis connection", cfg.StoreBackend)
		}
		return NewRedisBackend(redisClient), nil
	case BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("store backend %q requires a database connection", cfg.StoreBackend)
		}
		return NewPostgresBackend(db), nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
