// README: Redis-backed TTL cache so replicas share weather samples.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis adapts a redis client to Store. Backend errors degrade to cache
// misses rather than failing the caller.
type Redis struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewRedis(rdb *redis.Client, logger *slog.Logger) *Redis {
	return &Redis{rdb: rdb, logger: logger}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Debug("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Warn("cache set failed", "key", key, "error", err)
	}
}
